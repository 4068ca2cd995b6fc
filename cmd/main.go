package main

import (
	"net/http"

	"CardTable/config"
	"CardTable/internal/game/engine"
	"CardTable/internal/game/table"
	"CardTable/internal/journal"
	"CardTable/internal/storage"
	"CardTable/internal/utils"
	"CardTable/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. 可选流水：配置了 Redis 才开
	//-------------------------------------------------------
	jr := journal.NewNop()
	if config.C.Redis.Addr != "" {
		if err := storage.InitRedis(
			config.C.Redis.Addr,
			config.C.Redis.Password,
			config.C.Redis.DB,
		); err != nil {
			utils.Print.Fatal("Redis init failed", "err", err)
		}
		jr = journal.NewRedis(storage.Rdb)
	}

	//-------------------------------------------------------
	// 2. Gin + CORS + 静态页面
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/client.js", "./web/client.js")
	r.StaticFile("/style.css", "./web/style.css")

	//-------------------------------------------------------
	// 3. Hub + Engine（唯一一桌，进程生命周期）
	//-------------------------------------------------------
	hub := websocket.NewHub()
	eng := engine.New(table.New(), hub, jr)

	hub.OnConnect = eng.Connect
	hub.OnDisconnect = eng.Disconnect
	hub.OnIncoming = func(msg websocket.IncomingMessage) {
		if msg.Event == "action" {
			eng.EnqueueAction(msg.From, engine.ParseAction(msg.Data))
		}
	}

	go hub.Run()
	go eng.Run()

	//-------------------------------------------------------
	// 4. WebSocket 入口
	//-------------------------------------------------------
	r.GET("/ws", websocket.ServeWS(hub))

	//-------------------------------------------------------
	// 5. 启动服务器
	//-------------------------------------------------------
	utils.Print.Info("Server running", "port", config.C.Server.Port)
	if err := r.Run(":" + config.C.Server.Port); err != nil {
		utils.Print.Fatal("server exited", "err", err)
	}
}
