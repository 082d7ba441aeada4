package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type reviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview accepts a review from any visitor, logged in or not.
func (h *Handler) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Comment = strings.TrimSpace(req.Comment)
	if req.Name == "" || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in both name and comment fields"})
		return
	}

	review, err := h.store.CreateReview(c.Request.Context(), req.Name, req.Rating, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.store.ListReviews(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
