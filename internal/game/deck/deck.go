package deck

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card 一张牌：id 仅用于追踪与判等，花色/点数/颜色在创建后不再重算
type Card struct {
	ID    string `json:"id"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Color string `json:"color"`
}

var suits = []string{"♠", "♥", "♦", "♣"}
var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var rnd = rand.New(rand.NewSource(time.Now().UnixNano()))

// Seed 重设随机源（测试用固定种子）
func Seed(seed int64) {
	rnd = rand.New(rand.NewSource(seed))
}

// New 构造一副 52 张新牌，每张带唯一 id
func New() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, Card{
				ID:    s + "-" + r + "-" + uuid.NewString()[:8],
				Suit:  s,
				Rank:  r,
				Color: colorOf(s),
			})
		}
	}
	return cards
}

func colorOf(suit string) string {
	if suit == "♥" || suit == "♦" {
		return "red"
	}
	return "black"
}

// Shuffle 原地 Fisher–Yates 洗牌，返回同一切片便于链式调用
func Shuffle(cards []Card) []Card {
	for i := len(cards) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

// Refill 牌堆耗尽时回收弃牌堆：
// 弃牌堆顶保留在原位，其余洗入新牌堆。弃牌堆不足两张时不动。
// 这是弃牌回到牌堆的唯一路径。
func Refill(deckCards, discard []Card) ([]Card, []Card) {
	if len(deckCards) != 0 || len(discard) <= 1 {
		return deckCards, discard
	}
	top := discard[len(discard)-1]
	deckCards = Shuffle(append(deckCards, discard[:len(discard)-1]...))
	return deckCards, []Card{top}
}

func (c Card) String() string {
	var b strings.Builder
	b.WriteString(c.Rank)
	b.WriteString(c.Suit)
	return b.String()
}
