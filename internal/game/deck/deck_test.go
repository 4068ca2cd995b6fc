package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ✅ 测试新牌组完整性
func TestNew(t *testing.T) {
	cards := New()

	assert.Equal(t, 52, len(cards))

	ids := make(map[string]bool)
	suitSet := make(map[string]bool)
	rankSet := make(map[string]bool)
	for _, c := range cards {
		assert.False(t, ids[c.ID], "card id %s duplicated", c.ID)
		ids[c.ID] = true
		suitSet[c.Suit] = true
		rankSet[c.Rank] = true

		if c.Suit == "♥" || c.Suit == "♦" {
			assert.Equal(t, "red", c.Color)
		} else {
			assert.Equal(t, "black", c.Color)
		}
	}
	assert.Equal(t, 4, len(suitSet))
	assert.Equal(t, 13, len(rankSet))
}

// ✅ 测试洗牌：相同种子序列相同，不同种子序列不同
func TestShuffleSeeded(t *testing.T) {
	a := New()
	b := make([]Card, len(a))
	copy(b, a)

	Seed(42)
	Shuffle(a)
	Seed(42)
	Shuffle(b)
	for i := range a {
		if a[i].Suit != b[i].Suit || a[i].Rank != b[i].Rank {
			t.Fatalf("expected identical order for same seed at %d", i)
		}
	}

	c := make([]Card, len(a))
	copy(c, a)
	Seed(99)
	Shuffle(c)
	diff := false
	for i := range a {
		if a[i].Suit != c[i].Suit || a[i].Rank != c[i].Rank {
			diff = true
			break
		}
	}
	assert.True(t, diff, "different seed should reorder the deck")
}

// ✅ 测试弃牌回收：堆顶保留，其余进牌堆
func TestRefill(t *testing.T) {
	all := New()
	c1, c2, c3 := all[0], all[1], all[2]

	d, discard := Refill(nil, []Card{c1, c2, c3})

	assert.Equal(t, 2, len(d))
	assert.Equal(t, 1, len(discard))
	assert.Equal(t, c3.ID, discard[0].ID, "discard top must survive the refill")

	got := map[string]bool{d[0].ID: true, d[1].ID: true}
	assert.True(t, got[c1.ID] && got[c2.ID], "remaining discards become the new deck")
}

// ✅ 弃牌不足两张或牌堆非空时不回收
func TestRefillNoop(t *testing.T) {
	all := New()

	d, discard := Refill(nil, []Card{all[0]})
	assert.Equal(t, 0, len(d))
	assert.Equal(t, 1, len(discard))

	d, discard = Refill([]Card{all[1]}, []Card{all[2], all[3]})
	assert.Equal(t, 1, len(d))
	assert.Equal(t, 2, len(discard))
}

func TestCardString(t *testing.T) {
	c := Card{Suit: "♠", Rank: "Q"}
	assert.Equal(t, "Q♠", c.String())
}
