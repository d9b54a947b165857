package http

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/adapters/signal"
	"github.com/mohd-musheer/backendChat/internal/app"
	"github.com/mohd-musheer/backendChat/internal/config"
	"github.com/mohd-musheer/backendChat/internal/storage"
)

// UploadsPrefix is where stored blobs are served from until their
// retention window expires.
const UploadsPrefix = "/uploads"

func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = uuid.NewString()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

type Deps struct {
	Directory *app.Directory
	Registry  *app.Registry
	Router    *app.Router
	Manager   *app.Manager
	Notifier  *app.Notifier
	Store     storage.Store
}

func SetupRouter(ctx context.Context, cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("ChatSessions", store))
	r.Use(ClientTokenMiddleware())

	r.Static("/static", cfg.StaticPath)
	r.Static(UploadsPrefix, cfg.UploadDir)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Str("uploads", cfg.UploadDir).Msg("router setup")

	ctl := signal.NewChatWSController(cfg, deps.Manager, deps.Registry, deps.Router)

	api := r.Group("/api")
	api.GET("/ws/chat", func(c *gin.Context) {
		ctl.HandleChat(ctx, c)
	})
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"rooms":       len(deps.Directory.List()),
			"connections": deps.Registry.Count(),
		})
	})
	api.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Directory.List())
	})

	r.MaxMultipartMemory = cfg.UploadMaxBytes
	r.POST("/upload", UploadHandler(cfg, deps.Store, deps.Notifier))

	return r
}
