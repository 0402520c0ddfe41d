package http

import (
	"nexus-tube/domain/repository"

	"github.com/gin-gonic/gin"
)

type IToastHandler interface {
	Active(c *gin.Context)
}

type ToastHandler struct {
	toasts repository.IToastCache
}

func NewToastHandler(toasts repository.IToastCache) IToastHandler {
	return &ToastHandler{toasts: toasts}
}

// Active answers GET /api/toast with the notices of the caller that are
// still inside their display window
func (h *ToastHandler) Active(c *gin.Context) {
	toasts, err := h.toasts.Active(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"toasts": toasts, "ttlMs": h.toasts.TTL().Milliseconds()})
}
