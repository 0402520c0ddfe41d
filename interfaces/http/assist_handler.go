package http

import (
	"nexus-tube/domain/dto"
	"nexus-tube/domain/repository"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type IAssistHandler interface {
	Description(c *gin.Context)
	Polish(c *gin.Context)
	GenerateVideo(c *gin.Context)
}

type AssistHandler struct {
	assist usecase.IAssistUsecase
}

func NewAssistHandler(assist usecase.IAssistUsecase) IAssistHandler {
	return &AssistHandler{assist: assist}
}

func (h *AssistHandler) Description(c *gin.Context) {
	var req dto.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	text, err := h.assist.GenerateDescription(c.Request.Context(), req.Title)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, dto.AssistRes{Text: text})
}

func (h *AssistHandler) Polish(c *gin.Context) {
	var req dto.PolishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	text, err := h.assist.PolishStatus(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, dto.AssistRes{Text: text})
}

// GenerateVideo blocks until the clip is rendered. The caller uploads the
// returned URL through the regular video endpoint.
func (h *AssistHandler) GenerateVideo(c *gin.Context) {
	var req dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	uri, err := h.assist.GenerateVideo(c.Request.Context(), req.Prompt, repository.VideoOptions{
		Resolution:  req.Resolution,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, dto.AssistRes{VideoURL: uri})
}
