package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"referrify/internal/toast"
)

// ToastFeed is satisfied by *toast.Recorder
type ToastFeed interface {
	Drain() []toast.Toast
}

// ToastHandler hands out pending user feedback once; a second call returns []
type ToastHandler struct {
	feed ToastFeed
}

func NewToastHandler(feed ToastFeed) *ToastHandler {
	return &ToastHandler{feed: feed}
}

func (h *ToastHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Drain)
}

func (h *ToastHandler) Drain(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toasts": h.feed.Drain()})
}
