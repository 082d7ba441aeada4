package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/auth"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/cache"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/store"
)

var log = logrus.New()

type Handler struct {
	store     *store.Store
	tokens    *auth.Manager
	creds     *cache.Credentials
	uploadDir string
}

func New(st *store.Store, tokens *auth.Manager, creds *cache.Credentials, uploadDir string) *Handler {
	return &Handler{store: st, tokens: tokens, creds: creds, uploadDir: uploadDir}
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.Health)

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.tokens.Require(), h.Me)

	r.GET("/jobs", h.ListJobs)
	r.GET("/jobs/:id", h.GetJob)

	employer := r.Group("/", h.tokens.Require(), h.tokens.RequireRole(models.UserTypeEmployer))
	employer.POST("/jobs", h.CreateJob)
	employer.PUT("/jobs/:id", h.UpdateJob)
	employer.DELETE("/jobs/:id", h.DeleteJob)
	employer.GET("/jobs/:id/applications", h.JobApplications)
	employer.PUT("/applications/:id/status", h.UpdateApplicationStatus)

	seeker := r.Group("/", h.tokens.Require(), h.tokens.RequireRole(models.UserTypeJobSeeker))
	seeker.POST("/jobs/:id/apply", h.Apply)
	seeker.GET("/applications/mine", h.MyApplications)

	r.GET("/cv/:filename", h.tokens.Require(), h.ViewCV)

	r.GET("/reviews", h.ListReviews)
	r.POST("/reviews", h.CreateReview)

	admin := r.Group("/admin", h.tokens.Require(), h.tokens.RequireAdmin())
	admin.GET("/database", h.Database)
	admin.DELETE("/users/:id", h.AdminDeleteUser)
	admin.DELETE("/jobs/:id", h.AdminDeleteJob)
	admin.DELETE("/applications/:id", h.AdminDeleteApplication)
	admin.DELETE("/reviews/:id", h.AdminDeleteReview)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail maps a store error to its HTTP status. Unknown errors are logged and
// surface as a generic 500.
func fail(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail),
		errors.Is(err, store.ErrAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrJobNotFound),
		errors.Is(err, store.ErrApplicationNotFound),
		errors.Is(err, store.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNotJobOwner),
		errors.Is(err, store.ErrAdminUser):
		return http.StatusForbidden
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrInvalidUserType),
		errors.Is(err, store.ErrInvalidEmployer),
		errors.Is(err, store.ErrInvalidDeadline),
		errors.Is(err, store.ErrDeadlinePassed),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrInvalidRating):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
