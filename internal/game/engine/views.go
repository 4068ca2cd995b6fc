package engine

import "CardTable/internal/game/deck"

// PlayerView 视图里的玩家条目。Hand 只在条目属于观看者本人时填充，
// 其他玩家只给 HandCount——这是唯一的保密约束。
type PlayerView struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	HandCount int         `json:"handCount"`
	Hand      []deck.Card `json:"hand,omitempty"`
}

// View 某个连接看到的只读快照，每次状态变化都重新计算
type View struct {
	You          string       `json:"you"`
	Seated       bool         `json:"seated"`
	Players      []PlayerView `json:"players"`
	Active       int          `json:"active"`
	ActiveID     string       `json:"activeId"`
	DeckCount    int          `json:"deckCount"`
	DiscardCount int          `json:"discardCount"`
	DiscardTop   *deck.Card   `json:"discardTop"`
	CanAct       bool         `json:"canAct"`
}

// ViewFor 给某个连接（玩家或观众）算一份过滤后的快照
func (e *Engine) ViewFor(id string) View {
	t := e.Table

	activeID := ""
	if p := t.ActivePlayer(); p != nil {
		activeID = p.ID
	}
	seated := t.IndexOf(id) != -1

	players := make([]PlayerView, 0, len(t.Players))
	for _, p := range t.Players {
		pv := PlayerView{ID: p.ID, Name: p.Name, HandCount: len(p.Hand)}
		if p.ID == id {
			// 自己的手牌发拷贝，快照不共享底层数组
			pv.Hand = append([]deck.Card(nil), p.Hand...)
		}
		players = append(players, pv)
	}

	var top *deck.Card
	if len(t.Discard) > 0 {
		c := t.Discard[len(t.Discard)-1]
		top = &c
	}

	return View{
		You:          id,
		Seated:       seated,
		Players:      players,
		Active:       t.Active,
		ActiveID:     activeID,
		DeckCount:    len(t.Deck),
		DiscardCount: len(t.Discard),
		DiscardTop:   top,
		CanAct:       seated && activeID == id,
	}
}
