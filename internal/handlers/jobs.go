package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/auth"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/utils"
)

const dateLayout = "2006-01-02"

type jobRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Deadline    string `json:"deadline" binding:"required"` // YYYY-MM-DD
}

func (r *jobRequest) deadline() (time.Time, bool) {
	d, err := time.ParseInLocation(dateLayout, r.Deadline, time.Local)
	return d, err == nil
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) CreateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	deadline, ok := req.deadline()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
		return
	}

	claims := auth.CurrentClaims(c)
	job, err := h.store.CreateJob(c.Request.Context(), req.Title, req.Company, req.Description, req.Location, deadline, claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	log.WithFields(map[string]interface{}{"job_id": job.ID, "employer_id": claims.UserID}).Info("job posted")
	c.JSON(http.StatusCreated, job)
}

func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.store.ListJobs(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *Handler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.store.GetJobByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	deadline, okDate := req.deadline()
	if !okDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
		return
	}

	claims := auth.CurrentClaims(c)
	job, err := h.store.UpdateJob(c.Request.Context(), id, claims.UserID, req.Title, req.Company, req.Description, req.Location, deadline)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	claims := auth.CurrentClaims(c)
	cvFiles, err := h.store.DeleteJob(c.Request.Context(), id, claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	h.removeCVFiles(cvFiles)

	log.WithField("job_id", id).Info("job deleted")
	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}

func (h *Handler) removeCVFiles(files []string) {
	for _, f := range files {
		if err := utils.RemoveCV(h.uploadDir, f); err != nil {
			log.WithError(err).WithField("cv_file", f).Warn("failed to remove CV file")
		}
	}
}
