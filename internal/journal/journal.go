package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry 一条已生效操作的记录，带落牌后的三个计数，便于排查守恒问题
type Entry struct {
	Type    string    `json:"type"`
	Actor   string    `json:"actor"`
	Deck    int       `json:"deck"`
	Discard int       `json:"discard"`
	Hands   int       `json:"hands"`
	At      time.Time `json:"at"`
}

// Journal 只追加的操作流水。写失败不影响对局，由调用方记日志。
type Journal interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, n int64) ([]Entry, error)
}

// ---------- 空实现（未配置 Redis 时） ----------

type nop struct{}

func NewNop() Journal { return nop{} }

func (nop) Record(ctx context.Context, e Entry) error            { return nil }
func (nop) Recent(ctx context.Context, n int64) ([]Entry, error) { return nil, nil }

// ---------- Redis 实现 ----------

// key 约定：
//
//	list: table:journal  -> [Entry JSON, ...] 尾部最新
//	用 LTRIM 限长，流水不是持久化，重启开新桌
const (
	journalKey = "table:journal"
	maxEntries = 512
)

type redisJournal struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) Journal {
	return &redisJournal{rdb: rdb}
}

func (j *redisJournal) Record(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	p := j.rdb.Pipeline()
	p.RPush(ctx, journalKey, data)
	p.LTrim(ctx, journalKey, -maxEntries, -1)
	_, err = p.Exec(ctx)
	return err
}

// Recent 取最近 n 条，老的在前
func (j *redisJournal) Recent(ctx context.Context, n int64) ([]Entry, error) {
	raw, err := j.rdb.LRange(ctx, journalKey, -n, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(raw))
	for _, r := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
