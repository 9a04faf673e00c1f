package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/service"
)

type JobHandler struct {
	jobs service.JobService
	apps service.ApplicationService
}

func NewJobHandler(jobs service.JobService, apps service.ApplicationService) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps}
}

// RegisterRoutes registers job routes under /api/jobs
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.DELETE("", h.Clear)
	rg.GET("/:job_id", h.Get)
	rg.PATCH("/:job_id", h.Update)
	rg.DELETE("/:job_id", h.Delete)
	rg.POST("/:job_id/views", h.RecordView)
	rg.POST("/:job_id/applications", h.Apply)
}

// List returns all jobs, or only active ones with ?active=true
func (h *JobHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	activeOnly, _ := strconv.ParseBool(c.Query("active"))

	var list []models.Job
	if activeOnly {
		list = h.jobs.ListActive(ctx)
	} else {
		list = h.jobs.ListAll(ctx)
	}
	c.JSON(http.StatusOK, dto.JobListResponse{Items: list, Total: len(list)})
}

func (h *JobHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	job, err := h.jobs.GetByID(ctx, c.Param("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var in dto.CreateJobDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	job, err := h.jobs.Create(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var patch dto.UpdateJobDTO
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	job, err := h.jobs.Update(ctx, c.Param("job_id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.jobs.Delete(ctx, c.Param("job_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordView always answers 204; unknown ids are ignored
func (h *JobHandler) RecordView(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	h.jobs.RecordView(ctx, c.Param("job_id"))
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) Clear(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	h.jobs.Clear(ctx)
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) Apply(c *gin.Context) {
	var in dto.SubmitApplicationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	app, err := h.apps.ApplyToJob(ctx, c.Param("job_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}
