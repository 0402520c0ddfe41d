package http

import (
	"nexus-tube/domain/dto"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type ILibraryHandler interface {
	History(c *gin.Context)
	AddToHistory(c *gin.Context)
	Downloads(c *gin.Context)
	Download(c *gin.Context)
}

type LibraryHandler struct {
	library usecase.ILibraryUsecase
	catalog usecase.ICatalogUsecase
}

func NewLibraryHandler(library usecase.ILibraryUsecase, catalog usecase.ICatalogUsecase) ILibraryHandler {
	return &LibraryHandler{library: library, catalog: catalog}
}

func (h *LibraryHandler) History(c *gin.Context) {
	ok(c, h.library.WatchHistory())
}

func (h *LibraryHandler) AddToHistory(c *gin.Context) {
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
	h.library.AddToHistory(video)
	ok(c, h.library.WatchHistory())
}

func (h *LibraryHandler) Downloads(c *gin.Context) {
	ok(c, h.library.DownloadedVideos())
}

// Download records the video and starts the media save in the background;
// the reply does not wait for the file.
func (h *LibraryHandler) Download(c *gin.Context) {
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
	h.library.DownloadVideo(video)
	ok(c, h.library.DownloadedVideos())
}
