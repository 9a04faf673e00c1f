package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/service"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/unread-count", h.UnreadCount)
	rg.PUT("/read-all", h.MarkAllRead)
	rg.PUT("/:notification_id/read", h.MarkRead)
}

// List returns notifications newest first, scoped by ?role= when given
func (h *NotificationHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.List(ctx, models.Role(c.Query("role")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list, "total": len(list)})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	role := models.Role(c.Query("role"))
	count, err := h.svc.UnreadCount(ctx, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "unread": count})
}

// MarkRead answers 204 even for unknown ids
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	h.svc.MarkRead(ctx, c.Param("notification_id"))
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.MarkAllRead(ctx, models.Role(c.Query("role"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
