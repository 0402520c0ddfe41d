package http

import (
	"nexus-tube/domain/dto"
	"nexus-tube/domain/model"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type IEngagementHandler interface {
	ToggleLike(c *gin.Context)
	ToggleSubscribe(c *gin.Context)
	ToggleNotification(c *gin.Context)
	TogglePin(c *gin.Context)
	State(c *gin.Context)
	Liked(c *gin.Context)
	Subscriptions(c *gin.Context)
	Pinned(c *gin.Context)
}

type EngagementHandler struct {
	engagement usecase.IEngagementUsecase
	catalog    usecase.ICatalogUsecase
}

func NewEngagementHandler(engagement usecase.IEngagementUsecase, catalog usecase.ICatalogUsecase) IEngagementHandler {
	return &EngagementHandler{engagement: engagement, catalog: catalog}
}

func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	var req dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.engagement.ToggleLike(req.ID, model.TargetType(req.Type))
	ok(c, gin.H{"id": req.ID, "liked": h.engagement.IsLiked(req.ID)})
}

func (h *EngagementHandler) ToggleSubscribe(c *gin.Context) {
	var req dto.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.engagement.ToggleSubscribe(req.Channel)
	ok(c, h.channelState(req.Channel))
}

func (h *EngagementHandler) ToggleNotification(c *gin.Context) {
	var req dto.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.engagement.ToggleChannelNotification(req.Channel)
	ok(c, h.channelState(req.Channel))
}

// TogglePin resolves the video from the catalog so the pinned copy carries
// its current fields
func (h *EngagementHandler) TogglePin(c *gin.Context) {
	var req dto.VideoRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	video, err := h.catalog.Video(req.VideoID)
	if err != nil {
		fail(c, err)
		return
	}
	h.engagement.TogglePin(video)
	ok(c, gin.H{"videoId": video.ID, "pinned": h.engagement.IsPinned(video.ID)})
}

// State answers GET /api/state?id=&channel= for the watch page buttons
func (h *EngagementHandler) State(c *gin.Context) {
	id := c.Query("id")
	state := h.channelState(c.Query("channel"))
	state["liked"] = id != "" && h.engagement.IsLiked(id)
	state["pinned"] = id != "" && h.engagement.IsPinned(id)
	ok(c, state)
}

func (h *EngagementHandler) Liked(c *gin.Context) {
	ok(c, h.engagement.LikedVideos())
}

func (h *EngagementHandler) Subscriptions(c *gin.Context) {
	ok(c, h.engagement.SubscribedChannels())
}

func (h *EngagementHandler) Pinned(c *gin.Context) {
	ok(c, h.engagement.PinnedVideos())
}

func (h *EngagementHandler) channelState(channel string) gin.H {
	return gin.H{
		"channel":       channel,
		"subscribed":    channel != "" && h.engagement.IsSubscribed(channel),
		"notifications": channel != "" && h.engagement.GetChannelNotificationState(channel),
	}
}
