package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobhive/jobhive/internal/apperr"
	"github.com/jobhive/jobhive/internal/dtos"
	"github.com/jobhive/jobhive/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

func jobID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.Validation("job id must be an integer")
	}
	return id, nil
}

// List is GET /jobs with optional search filters.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobSearchQuery
	if err := bindQuery(c, &q); err != nil {
		renderError(c, err)
		return
	}
	jobs, err := h.Jobs.Search(c.Request.Context(), q)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Get is GET /jobs/:id, owning company included.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	job, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Create is POST /jobs, admin only.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	job, err := h.Jobs.Create(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// Update is PATCH /jobs/:id, admin only.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	var req dtos.JobUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	job, err := h.Jobs.Update(c.Request.Context(), id, &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Delete is DELETE /jobs/:id, admin only.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.Jobs.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
