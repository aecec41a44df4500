package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlatformStats is public: headline numbers for the landing page.
func (h *Handler) PlatformStats(c *gin.Context) {
	stats, err := h.registry.PlatformStats()
	if err != nil {
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "/")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AllUsers lists every record collection. Admin-gated at the router.
func (h *Handler) AllUsers(c *gin.Context) {
	users, err := h.registry.AllUsers()
	if err != nil {
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "/")
		return
	}
	c.JSON(http.StatusOK, users)
}
