package engine

import (
	"context"
	"strings"
	"time"

	"CardTable/internal/game/deck"
	"CardTable/internal/game/table"
	"CardTable/internal/journal"
	"CardTable/internal/utils"
	"CardTable/internal/websocket"
)

// ---------------------
//       EVENTS
// ---------------------

type eventKind int

const (
	evAction eventKind = iota
	evConnect
	evDisconnect
)

type event struct {
	kind eventKind
	from string
	act  Action
}

// ---------------------
//       ENGINE
// ---------------------

// Engine 持有唯一的 Table，所有修改都在 Run 的单协程里顺序执行：
// 连接/断开/玩家操作走同一条队列，天然互不交错，不需要给 Table 加锁。
// 每处理完一个事件，向所有连接各自推一份过滤后的视图。
type Engine struct {
	Table   *table.Table
	Hub     websocket.HubInterface
	Journal journal.Journal
	events  chan event
}

func New(t *table.Table, hub websocket.HubInterface, j journal.Journal) *Engine {
	if j == nil {
		j = journal.NewNop()
	}
	return &Engine{
		Table:   t,
		Hub:     hub,
		Journal: j,
		events:  make(chan event, 32), // 防止死锁
	}
}

// Run 单写循环，main 里 go eng.Run()
func (e *Engine) Run() {
	for ev := range e.events {
		e.handle(ev)
	}
}

// Stop 关闭事件队列，Run 退出
func (e *Engine) Stop() {
	close(e.events)
}

// Connect 连接建立（Hub 回调）
func (e *Engine) Connect(id string) {
	e.events <- event{kind: evConnect, from: id}
}

// Disconnect 连接断开（Hub 回调）
func (e *Engine) Disconnect(id string) {
	e.events <- event{kind: evDisconnect, from: id}
}

// EnqueueAction 玩家操作入队（Hub 回调）
func (e *Engine) EnqueueAction(from string, a Action) {
	e.events <- event{kind: evAction, from: from, act: a}
}

func (e *Engine) handle(ev event) {
	switch ev.kind {
	case evConnect:
		if e.Table.Seat(ev.from) {
			utils.Print.Info("player seated", "id", ev.from, "seats", len(e.Table.Players))
		} else {
			utils.Print.Info("table full, spectating", "id", ev.from)
		}
		e.BroadcastAll()

	case evDisconnect:
		if e.Table.Unseat(ev.from) {
			utils.Print.Info("player left, hand recycled", "id", ev.from, "seats", len(e.Table.Players))
			e.BroadcastAll()
		}

	case evAction:
		e.Apply(ev.from, ev.act)
		// 被拒绝的操作也重新广播：视图没变化就是给操作方的唯一反馈
		e.BroadcastAll()
	}
}

// Apply 校验并执行一个玩家操作。无效/越权一律静默忽略，状态不变。
// 除 SET_NAME 外都要求操作者正是当前行动玩家。
// 只能被 Run 协程（或测试）调用。
func (e *Engine) Apply(actor string, a Action) {
	t := e.Table
	actorIdx := t.IndexOf(actor)
	seated := actorIdx != -1
	active := seated && t.IsActive(actor)

	applied := false

	switch a.Type {
	case "SET_NAME":
		// 入座即可改名，不占用回合
		if !seated {
			break
		}
		name := strings.TrimSpace(a.Name)
		if name == "" {
			break
		}
		if r := []rune(name); len(r) > 24 {
			name = string(r[:24])
		}
		t.Players[actorIdx].Name = name
		applied = true

	case "NEW_GAME":
		// 空桌也允许重开（观众触发重置）
		if !active && len(t.Players) > 0 {
			break
		}
		for _, p := range t.Players {
			t.Deck = append(t.Deck, p.Hand...)
			p.Hand = p.Hand[:0]
		}
		deck.Shuffle(t.Deck)
		t.Discard = t.Discard[:0]
		t.Active = 0
		applied = true

	case "SHUFFLE":
		if !active {
			break
		}
		deck.Shuffle(t.Deck)
		applied = true

	case "DEAL":
		if !active {
			break
		}
		count := dealCount(a.Count)
		if count <= 0 || len(t.Players) == 0 {
			break
		}
		for c := 0; c < count; c++ {
			// 一轮按座次每人一张，发牌前先试回收弃牌堆；
			// 牌真发完了这一轮提前结束
			for _, p := range t.Players {
				t.Deck, t.Discard = deck.Refill(t.Deck, t.Discard)
				if len(t.Deck) == 0 {
					break
				}
				p.Hand = append(p.Hand, t.Deck[len(t.Deck)-1])
				t.Deck = t.Deck[:len(t.Deck)-1]
			}
		}
		applied = true

	case "DRAW":
		if !active {
			break
		}
		t.Deck, t.Discard = deck.Refill(t.Deck, t.Discard)
		if len(t.Deck) > 0 {
			p := t.Players[actorIdx]
			p.Hand = append(p.Hand, t.Deck[len(t.Deck)-1])
			t.Deck = t.Deck[:len(t.Deck)-1]
		}
		applied = true

	case "PLAY":
		if !active {
			break
		}
		idx := playIndex(a.Index)
		hand := t.Players[actorIdx].Hand
		if idx < 0 || idx >= len(hand) {
			break
		}
		card := hand[idx]
		t.Players[actorIdx].Hand = append(hand[:idx], hand[idx+1:]...)
		t.Discard = append(t.Discard, card)
		applied = true

	case "NEXT":
		if !active {
			break
		}
		if len(t.Players) > 0 {
			t.Active = (t.Active + 1) % len(t.Players)
		}
		applied = true

	default:
		// 未知类型：不动
	}

	if applied {
		e.record(a.Type, actor)
	} else {
		utils.Print.Debug("action ignored", "type", a.Type, "actor", actor)
	}
}

// BroadcastAll 给每个连接（含观众）各推一份自己的视图，不缓存不做 diff
func (e *Engine) BroadcastAll() {
	for _, id := range e.Hub.ClientIDs() {
		e.Hub.SendToClient(id, websocket.OutgoingMessage{
			Event: "state",
			Data:  e.ViewFor(id),
		})
	}
}

func (e *Engine) record(actionType, actor string) {
	t := e.Table
	hands := 0
	for _, p := range t.Players {
		hands += len(p.Hand)
	}
	err := e.Journal.Record(context.Background(), journal.Entry{
		Type:    actionType,
		Actor:   actor,
		Deck:    len(t.Deck),
		Discard: len(t.Discard),
		Hands:   hands,
		At:      time.Now(),
	})
	if err != nil {
		utils.Print.Error("journal record failed", "err", err)
	}
}
