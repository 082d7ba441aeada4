package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/auth"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/utils"
)

// Database dumps all four tables for the admin view.
func (h *Handler) Database(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.store.AllUsers(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	jobs, err := h.store.AllJobs(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	apps, err := h.store.AllApplications(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	reviews, err := h.store.ListReviews(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":        users,
		"jobs":         jobs,
		"applications": apps,
		"reviews":      reviews,
	})
}

func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cvFiles, err := h.store.DeleteUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	h.removeCVFiles(cvFiles)

	log.WithField("user_id", id).Info("user deleted by admin")
	c.JSON(http.StatusOK, gin.H{"message": "user and associated data deleted"})
}

func (h *Handler) AdminDeleteJob(c *gin.Context) {
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

	log.WithField("job_id", id).Info("job deleted by admin")
	c.JSON(http.StatusOK, gin.H{"message": "job and associated applications deleted"})
}

func (h *Handler) AdminDeleteApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cvFile, err := h.store.DeleteApplication(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if cvFile != "" {
		if err := utils.RemoveCV(h.uploadDir, cvFile); err != nil {
			log.WithError(err).WithField("cv_file", cvFile).Warn("failed to remove CV file")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}

func (h *Handler) AdminDeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteReview(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
