package websocket

// OutgoingMessage 推送给浏览器的信封，state 快照走 Event="state"
type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// IncomingMessage 浏览器发来的信封，玩家操作走 Event="action"，
// Data 内是 {type, ...payload}
type IncomingMessage struct {
	From  string      `json:"from"`
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
