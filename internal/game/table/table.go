package table

import (
	"fmt"

	"CardTable/internal/game/deck"
)

// MaxSeats 一桌最多入座人数，超出后新连接只能观战
const MaxSeats = 6

// Player 一个入座的玩家。连接断开即移除。
type Player struct {
	ID   string
	Name string
	Hand []deck.Card
}

// Table 唯一的权威桌面状态。进程启动时创建一次，
// 只允许 engine 的单写循环修改（见 engine 包）。
// Players 的顺序即座次，决定行动轮转。
type Table struct {
	Players []*Player
	Deck    []deck.Card
	Discard []deck.Card
	Active  int
}

// New 创建空桌：满牌堆（已洗）、无玩家、无弃牌
func New() *Table {
	return &Table{
		Players: make([]*Player, 0, MaxSeats),
		Deck:    deck.Shuffle(deck.New()),
		Discard: make([]deck.Card, 0, 52),
	}
}

// Seat 尝试入座。满员返回 false（观战）。
// 首位入座者成为先手。
func (t *Table) Seat(id string) bool {
	if len(t.Players) >= MaxSeats {
		return false
	}
	t.Players = append(t.Players, &Player{
		ID:   id,
		Name: fmt.Sprintf("Player %d", len(t.Players)+1),
		Hand: make([]deck.Card, 0, 8),
	})
	if len(t.Players) == 1 {
		t.Active = 0
	}
	return true
}

// Unseat 移除玩家：手牌全部回收进牌堆并重洗，再修正 Active 指针。
// 观众（未入座）返回 false。
func (t *Table) Unseat(id string) bool {
	idx := t.IndexOf(id)
	if idx == -1 {
		return false
	}
	t.Deck = append(t.Deck, t.Players[idx].Hand...)
	t.Players = append(t.Players[:idx], t.Players[idx+1:]...)
	deck.Shuffle(t.Deck)

	if len(t.Players) == 0 {
		t.Active = 0
	} else {
		if idx < t.Active {
			t.Active--
		}
		if t.Active >= len(t.Players) {
			t.Active = 0
		}
	}
	return true
}

// IndexOf 返回座次下标，未入座返回 -1。
// 座次以有序切片为准，人数上限 6，线性扫描足够。
func (t *Table) IndexOf(id string) int {
	for i, p := range t.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ActivePlayer 当前行动玩家，空桌返回 nil
func (t *Table) ActivePlayer() *Player {
	if len(t.Players) == 0 {
		return nil
	}
	return t.Players[t.Active]
}

// IsActive 判断 id 是否为当前行动玩家
func (t *Table) IsActive(id string) bool {
	p := t.ActivePlayer()
	return p != nil && p.ID == id
}

// CardsInPlay 全桌牌数（手牌+牌堆+弃牌堆），恒为 52
func (t *Table) CardsInPlay() int {
	n := len(t.Deck) + len(t.Discard)
	for _, p := range t.Players {
		n += len(p.Hand)
	}
	return n
}
