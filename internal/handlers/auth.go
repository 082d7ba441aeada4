package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/auth"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/cache"
	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
)

type signupRequest struct {
	UserType string `json:"user_type" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters long"})
		return
	}
	// Admins are seeded, never self-registered.
	if req.UserType != models.UserTypeJobSeeker && req.UserType != models.UserTypeEmployer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_type must be job_seeker or employer"})
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req.UserType, req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.creds.Store(c.Request.Context(), user.Email, user.Password); err != nil {
		log.WithError(err).Warn("failed to cache credentials")
	}

	log.WithFields(map[string]interface{}{"user_id": user.ID, "user_type": user.UserType}).Info("user registered")
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ctx := c.Request.Context()

	// Fast-fail on a cached hash before hitting the database.
	if hash, err := h.creds.Lookup(ctx, req.Email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.WithError(err).Warn("credential cache lookup failed")
	}

	user, err := h.store.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.UserType, user.IsAdmin)
	if err != nil {
		log.WithError(err).Error("failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating token"})
		return
	}

	if err := h.creds.Store(ctx, user.Email, user.Password); err != nil {
		log.WithError(err).Warn("failed to cache credentials")
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, 3600*24, "", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *Handler) Me(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	user, err := h.store.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
