package server

import (
	"net/http"
	"time"

	"nexus-tube/domain/dto"
	"nexus-tube/infrastructure/realtime"
	httpHandler "nexus-tube/interfaces/http"
	"nexus-tube/interfaces/middleware"
	"nexus-tube/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the presentation layer handed to InitiateRouter
type Handlers struct {
	Session      httpHandler.ISessionHandler
	Catalog      httpHandler.ICatalogHandler
	Feed         httpHandler.IFeedHandler
	Engagement   httpHandler.IEngagementHandler
	Library      httpHandler.ILibraryHandler
	Moderation   httpHandler.IModerationHandler
	Message      httpHandler.IMessageHandler
	Notification httpHandler.INotificationHandler
	Assist       httpHandler.IAssistHandler
	Toast        httpHandler.IToastHandler
}

func InitiateRouter(
	handlers Handlers,
	session usecase.ISessionUsecase,
	hub *realtime.Hub,
	secretKey string,
	allowOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
	})

	router.GET("/api/session", handlers.Session.Current)
	router.GET("/api/users", handlers.Session.Users)
	router.POST("/api/session/signup", handlers.Session.Signup)
	router.POST("/api/session/login", handlers.Session.Login)
	router.POST("/api/session/director", handlers.Session.DirectorLogin)

	api := router.Group("api")
	api.Use(middleware.SessionGuard(session, secretKey))

	api.POST("/session/logout", handlers.Session.Logout)
	api.POST("/session/switch", handlers.Session.Switch)
	api.PATCH("/session/profile", handlers.Session.UpdateProfile)
	api.POST("/users", handlers.Session.AddUser)

	api.GET("/videos", handlers.Catalog.Videos)
	api.POST("/videos", handlers.Catalog.AddVideo)
	api.GET("/videos/:id", handlers.Catalog.Video)
	api.DELETE("/videos/:id", handlers.Catalog.DeleteVideo)
	api.GET("/posts", handlers.Catalog.Posts)
	api.POST("/posts", handlers.Catalog.AddPost)
	api.DELETE("/posts/:id", handlers.Catalog.DeletePost)
	api.GET("/comments/:targetId", handlers.Catalog.Comments)
	api.POST("/comments", handlers.Catalog.AddComment)

	api.GET("/feed", handlers.Feed.Feed)
	api.GET("/shorts", handlers.Feed.Shorts)
	api.GET("/channels", handlers.Feed.Channels)
	api.GET("/channels/:name", handlers.Feed.ChannelPage)

	api.POST("/likes", handlers.Engagement.ToggleLike)
	api.GET("/likes", handlers.Engagement.Liked)
	api.POST("/subscriptions", handlers.Engagement.ToggleSubscribe)
	api.GET("/subscriptions", handlers.Engagement.Subscriptions)
	api.POST("/subscriptions/notifications", handlers.Engagement.ToggleNotification)
	api.POST("/pins", handlers.Engagement.TogglePin)
	api.GET("/pins", handlers.Engagement.Pinned)
	api.GET("/state", handlers.Engagement.State)

	api.GET("/history", handlers.Library.History)
	api.POST("/history", handlers.Library.AddToHistory)
	api.GET("/downloads", handlers.Library.Downloads)
	api.POST("/downloads", handlers.Library.Download)

	api.POST("/reports", handlers.Moderation.AddReport)

	api.POST("/messages", handlers.Message.Send)
	api.GET("/messages", handlers.Message.Inbox)
	api.GET("/messages/:userId", handlers.Message.Conversation)

	api.GET("/notifications", handlers.Notification.List)
	api.POST("/notifications/:id/read", handlers.Notification.MarkRead)

	assist := api.Group("/assist")
	{
		assist.POST("/description", handlers.Assist.Description)
		assist.POST("/polish", handlers.Assist.Polish)
		assist.POST("/video", handlers.Assist.GenerateVideo)
	}

	api.GET("/toast", handlers.Toast.Active)
	api.GET("/events", hub.Serve)
	api.GET("/ws", hub.ServeWS)

	admin := api.Group("/admin")
	admin.Use(middleware.DirectorOnly())
	{
		admin.GET("/reports", handlers.Moderation.Reports)
		admin.DELETE("/reports/:id", handlers.Moderation.Dismiss)
		admin.POST("/reports/:id/action", handlers.Moderation.TakeAction)
		admin.DELETE("/users/:name", handlers.Moderation.BanUser)
		admin.GET("/channels", handlers.Feed.ChannelStats)
		admin.POST("/notifications", handlers.Notification.Publish)
	}

	return router
}
