package websocket

import (
	"sync"

	"CardTable/internal/utils"
)

// HubInterface engine 只依赖这三个方法，测试里用 mock 替换
type HubInterface interface {
	ClientIDs() []string
	SendToClient(id string, msg OutgoingMessage)
	Close()
}

// Hub 管理所有活跃连接（入座玩家 + 观众），按连接 id 索引。
// 生命周期事件通过回调交给游戏层，Hub 自己不碰桌面状态。
type Hub struct {
	clients    map[string]*Client // conn id -> client
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
	mu         sync.RWMutex

	OnConnect    func(id string)
	OnDisconnect func(id string)
	OnIncoming   func(IncomingMessage)
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Print.Info("Hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			n := len(h.clients)
			h.mu.Unlock()
			utils.Print.Info("connection open", "id", c.ID, "total", n)

			if h.OnConnect != nil {
				h.OnConnect(c.ID)
			}

		case c := <-h.unregister:
			h.mu.Lock()
			_, ok := h.clients[c.ID]
			if ok {
				delete(h.clients, c.ID)
				close(c.Send)
			}
			n := len(h.clients)
			h.mu.Unlock()

			// 两个 pump 都会触发 unregister，只处理第一次
			if ok {
				utils.Print.Info("connection closed", "id", c.ID, "total", n)
				if h.OnDisconnect != nil {
					h.OnDisconnect(c.ID)
				}
			}

		case msg := <-h.incoming:
			// 玩家消息统一转交游戏层
			if h.OnIncoming != nil {
				h.OnIncoming(msg)
			}

		case <-h.quit:
			h.mu.Lock()
			for _, c := range h.clients {
				close(c.Send)
			}
			h.clients = make(map[string]*Client)
			h.mu.Unlock()
			return
		}
	}
}

// ClientIDs 当前所有连接 id 的快照，广播时逐个投递各自的视图
func (h *Hub) ClientIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// SendToClient 向单个连接投递，队列满时丢弃（慢客户端不拖累全桌）
func (h *Hub) SendToClient(id string, msg OutgoingMessage) {
	h.mu.RLock()
	c, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case c.Send <- msg:
	default:
	}
}

func (h *Hub) Close() {
	close(h.quit)
}
