package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/service"
)

type ApplicationHandler struct {
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// RegisterRoutes registers application routes under /api/applications
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.PUT("/:application_id/status", h.UpdateStatus)
}

// List filters by ?job_id= or ?posted_by=; job_id wins when both are set
func (h *ApplicationHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var list []models.JobApplication
	switch {
	case c.Query("job_id") != "":
		list = h.svc.ListByJob(ctx, c.Query("job_id"))
	case c.Query("posted_by") != "":
		list = h.svc.ListByPoster(ctx, c.Query("posted_by"))
	default:
		list = h.svc.ListAll(ctx)
	}
	c.JSON(http.StatusOK, dto.ApplicationListResponse{Items: list, Total: len(list)})
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, h.svc.Stats(ctx))
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var in dto.UpdateApplicationStatusDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	app, err := h.svc.UpdateStatus(ctx, c.Param("application_id"), models.ApplicationStatus(in.Status), in.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
