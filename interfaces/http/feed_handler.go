package http

import (
	"nexus-tube/domain/dto"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type IFeedHandler interface {
	Feed(c *gin.Context)
	Channels(c *gin.Context)
	Shorts(c *gin.Context)
	ChannelPage(c *gin.Context)
	ChannelStats(c *gin.Context)
}

type FeedHandler struct {
	feed usecase.IFeedUsecase
}

func NewFeedHandler(feed usecase.IFeedUsecase) IFeedHandler {
	return &FeedHandler{feed: feed}
}

// Feed answers GET /api/feed?q=&category=
func (h *FeedHandler) Feed(c *gin.Context) {
	var query dto.FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	ok(c, h.feed.Feed(query.Q, query.Category))
}

func (h *FeedHandler) Channels(c *gin.Context) {
	ok(c, h.feed.MatchedChannels(c.Query("q")))
}

func (h *FeedHandler) Shorts(c *gin.Context) {
	ok(c, h.feed.Shorts())
}

// ChannelPage answers GET /api/channels/:name?sort=latest|popular
func (h *FeedHandler) ChannelPage(c *gin.Context) {
	ok(c, h.feed.ChannelPage(c.Param("name"), c.DefaultQuery("sort", usecase.SortLatest)))
}

func (h *FeedHandler) ChannelStats(c *gin.Context) {
	ok(c, h.feed.ChannelStats(c.Query("q")))
}
