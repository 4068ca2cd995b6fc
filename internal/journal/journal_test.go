package journal

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestJournal(t *testing.T) Journal {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(rdb)
}

// ✅ 流水写入后可按序读回
func Test_Redis_RecordAndRecent(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := j.Record(ctx, Entry{
			Type:    "DEAL",
			Actor:   fmt.Sprintf("conn-%d", i),
			Deck:    52 - i,
			Discard: 0,
			Hands:   i,
			At:      time.Now(),
		})
		assert.NoError(t, err)
	}

	got, err := j.Recent(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(got))
	assert.Equal(t, "conn-0", got[0].Actor, "oldest entry first")
	assert.Equal(t, "conn-2", got[2].Actor)
	assert.Equal(t, 50, got[2].Deck)
}

// ✅ 流水限长，老记录被裁掉
func Test_Redis_Trim(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	for i := 0; i < maxEntries+20; i++ {
		_ = j.Record(ctx, Entry{Type: "NEXT", Actor: "conn-a", At: time.Now()})
	}

	got, err := j.Recent(ctx, maxEntries*2)
	assert.NoError(t, err)
	assert.Equal(t, maxEntries, len(got))
}

func Test_Nop(t *testing.T) {
	j := NewNop()
	assert.NoError(t, j.Record(context.Background(), Entry{Type: "DRAW"}))
	got, err := j.Recent(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
