package http

import (
	"nexus-tube/domain/dto"
	"nexus-tube/domain/model"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type ICatalogHandler interface {
	Videos(c *gin.Context)
	Video(c *gin.Context)
	AddVideo(c *gin.Context)
	DeleteVideo(c *gin.Context)
	Posts(c *gin.Context)
	AddPost(c *gin.Context)
	DeletePost(c *gin.Context)
	Comments(c *gin.Context)
	AddComment(c *gin.Context)
}

type CatalogHandler struct {
	catalog usecase.ICatalogUsecase
}

func NewCatalogHandler(catalog usecase.ICatalogUsecase) ICatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Videos(c *gin.Context) {
	ok(c, h.catalog.Videos())
}

// Video answers GET /api/videos/:id with the video and its comment thread
func (h *CatalogHandler) Video(c *gin.Context) {
	id := c.Param("id")
	video, err := h.catalog.Video(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{
		"video":        video,
		"comments":     h.catalog.GetComments(id),
		"commentCount": h.catalog.CommentCount(id, model.TargetVideo),
	})
}

func (h *CatalogHandler) AddVideo(c *gin.Context) {
	var req dto.AddVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	video, err := h.catalog.AddVideo(model.Video{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		Duration:     req.Duration,
		Type:         model.VideoType(req.Type),
	})
	if err != nil {
		fail(c, err)
		return
	}
	created(c, video)
}

func (h *CatalogHandler) DeleteVideo(c *gin.Context) {
	if err := h.catalog.DeleteVideo(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

func (h *CatalogHandler) Posts(c *gin.Context) {
	ok(c, h.catalog.Posts())
}

func (h *CatalogHandler) AddPost(c *gin.Context) {
	var req dto.AddPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	post, err := h.catalog.AddPost(model.Post{Content: req.Content, ImageURL: req.ImageURL})
	if err != nil {
		fail(c, err)
		return
	}
	created(c, post)
}

func (h *CatalogHandler) DeletePost(c *gin.Context) {
	if err := h.catalog.DeletePost(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// Comments answers GET /api/comments/:targetId
func (h *CatalogHandler) Comments(c *gin.Context) {
	ok(c, h.catalog.GetComments(c.Param("targetId")))
}

func (h *CatalogHandler) AddComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	comment, err := h.catalog.AddComment(req.TargetID, model.TargetType(req.TargetType), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, comment)
}
