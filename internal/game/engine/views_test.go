package engine

import (
	"encoding/json"
	"strings"
	"testing"

	"CardTable/internal/game/deck"

	"github.com/stretchr/testify/assert"
)

// ✅ 保密：别人的条目只有 handCount，序列化后也不带 hand 字段
func TestViewSecrecy(t *testing.T) {
	deck.Seed(21)
	eng, _ := newTestEngine(2, "watcher")
	eng.Apply("conn-0", Action{Type: "DEAL", Count: 3})

	v := eng.ViewFor("conn-0")
	assert.Equal(t, "conn-0", v.You)
	assert.True(t, v.Seated)
	assert.Equal(t, 3, len(v.Players[0].Hand), "own hand is visible")
	assert.Nil(t, v.Players[1].Hand, "opponent hand stays hidden")
	assert.Equal(t, 3, v.Players[1].HandCount)

	// 线上形态同样不泄漏：对手条目不含 "hand"
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	var decoded struct {
		Players []map[string]interface{} `json:"players"`
	}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	_, leaked := decoded.Players[1]["hand"]
	assert.False(t, leaked)

	// 观众谁的手牌都看不到
	w := eng.ViewFor("watcher")
	assert.False(t, w.Seated)
	assert.False(t, w.CanAct)
	for _, p := range w.Players {
		assert.Nil(t, p.Hand)
	}
}

// ✅ canAct 只对当前行动玩家为真
func TestViewCanAct(t *testing.T) {
	eng, _ := newTestEngine(3)

	assert.True(t, eng.ViewFor("conn-0").CanAct)
	assert.False(t, eng.ViewFor("conn-1").CanAct)

	eng.Apply("conn-0", Action{Type: "NEXT"})
	assert.False(t, eng.ViewFor("conn-0").CanAct)
	assert.True(t, eng.ViewFor("conn-1").CanAct)
	assert.Equal(t, "conn-1", eng.ViewFor("conn-2").ActiveID)
}

// ✅ 弃牌堆空时 discardTop 序列化为 null
func TestViewDiscardTop(t *testing.T) {
	deck.Seed(13)
	eng, _ := newTestEngine(1)

	v := eng.ViewFor("conn-0")
	assert.Nil(t, v.DiscardTop)
	raw, _ := json.Marshal(v)
	assert.True(t, strings.Contains(string(raw), `"discardTop":null`))

	eng.Apply("conn-0", Action{Type: "DEAL", Count: 1})
	eng.Apply("conn-0", Action{Type: "PLAY", Index: 0})
	v = eng.ViewFor("conn-0")
	assert.NotNil(t, v.DiscardTop)
	assert.Equal(t, 1, v.DiscardCount)
	assert.Equal(t, eng.Table.Discard[0].ID, v.DiscardTop.ID)
}

// ✅ 快照独立：改快照里的手牌不影响桌面
func TestViewIsACopy(t *testing.T) {
	deck.Seed(17)
	eng, _ := newTestEngine(1)
	eng.Apply("conn-0", Action{Type: "DEAL", Count: 2})

	v := eng.ViewFor("conn-0")
	v.Players[0].Hand[0].Rank = "X"
	assert.NotEqual(t, "X", eng.Table.Players[0].Hand[0].Rank)
}

// ✅ ParseAction 容忍各种脏输入
func TestParseAction(t *testing.T) {
	a := ParseAction(map[string]interface{}{
		"type":  "DEAL",
		"count": "3",
	})
	assert.Equal(t, "DEAL", a.Type)
	assert.Equal(t, 3, dealCount(a.Count))

	a = ParseAction(map[string]interface{}{"type": "PLAY", "index": 12345.0})
	assert.Equal(t, 999, playIndex(a.Index))

	a = ParseAction("not an object")
	assert.Equal(t, "", a.Type)
	assert.Equal(t, 1, dealCount(a.Count))
	assert.Equal(t, -1, playIndex(a.Index))

	a = ParseAction(map[string]interface{}{"type": "SET_NAME", "name": "Bob"})
	assert.Equal(t, "Bob", a.Name)
}
