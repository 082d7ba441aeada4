package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/auth"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/utils"
)

// Apply submits an application as the logged-in job seeker. Multipart form:
// cover_letter (required) and an optional cv_file (PDF, DOC or DOCX).
func (h *Handler) Apply(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	coverLetter := c.PostForm("cover_letter")
	if coverLetter == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide a cover letter"})
		return
	}

	claims := auth.CurrentClaims(c)
	user, err := h.store.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	var cvFile, cvText string
	if file, err := c.FormFile("cv_file"); err == nil {
		if !utils.AllowedCVFile(file.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type, upload PDF, DOC or DOCX"})
			return
		}
		cvFile, err = utils.SaveCV(h.uploadDir, file, c.SaveUploadedFile)
		if err != nil {
			log.WithError(err).Error("failed to save CV")
			c.JSON(http.StatusBadRequest, gin.H{"error": "error saving CV file"})
			return
		}
		cvText, err = utils.ExtractPDFText(filepath.Join(h.uploadDir, cvFile))
		if err != nil {
			// The file is stored and valid; text preview is best effort.
			log.WithError(err).WithField("cv_file", cvFile).Warn("failed to extract CV text")
			cvText = ""
		}
	}

	app, err := h.store.CreateApplication(c.Request.Context(), user.Name, user.Email, jobID, user.ID, coverLetter, cvFile, cvText)
	if err != nil {
		if cvFile != "" {
			h.removeCVFiles([]string{cvFile})
		}
		fail(c, err)
		return
	}

	log.WithFields(map[string]interface{}{"application_id": app.ID, "job_id": jobID}).Info("application submitted")
	c.JSON(http.StatusCreated, app)
}

func (h *Handler) MyApplications(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	apps, err := h.store.UserApplications(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *Handler) JobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}
	claims := auth.CurrentClaims(c)
	apps, err := h.store.JobApplications(c.Request.Context(), jobID, claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	appID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	claims := auth.CurrentClaims(c)
	app, err := h.store.UpdateApplicationStatus(c.Request.Context(), appID, claims.UserID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	log.WithFields(map[string]interface{}{"application_id": app.ID, "status": app.Status}).Info("application status updated")
	c.JSON(http.StatusOK, app)
}

// ViewCV serves a stored CV to the applicant, the job's employer, or an admin.
func (h *Handler) ViewCV(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))

	app, err := h.store.ApplicationByCVFile(c.Request.Context(), filename)
	if err != nil {
		fail(c, err)
		return
	}

	claims := auth.CurrentClaims(c)
	allowed := claims.IsAdmin || app.JobSeekerID == claims.UserID
	if !allowed {
		job, err := h.store.GetJobByID(c.Request.Context(), app.JobID)
		if err != nil {
			fail(c, err)
			return
		}
		allowed = job.EmployerID == claims.UserID
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "no permission to view this CV"})
		return
	}

	c.File(filepath.Join(h.uploadDir, filename))
}
