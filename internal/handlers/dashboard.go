package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kaamconnect/internal/middleware"
	"kaamconnect/internal/registry"
)

// Dashboard handlers run behind RequireAuth + RequireRole, so the session
// is always present here. A session whose record no longer resolves is
// answered with a not-found notice pointing back at sign-in.

func (h *Handler) CustomerDashboard(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	customer, stats, err := h.registry.CustomerDashboard(s.UserID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			failure(c, http.StatusNotFound, "Customer not found", "/customer/signin")
			return
		}
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer, "stats": stats})
}

func (h *Handler) ContractorDashboard(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	contractor, stats, err := h.registry.ContractorDashboard(s.UserID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			failure(c, http.StatusNotFound, "Contractor not found", "/contractor/signin")
			return
		}
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{"contractor": contractor, "stats": stats})
}

func (h *Handler) LabourerDashboard(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	labourer, stats, err := h.registry.LabourerDashboard(s.UserID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			failure(c, http.StatusNotFound, "Labourer not found", "/labourer/signin")
			return
		}
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{"labourer": labourer, "stats": stats})
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	admin, stats, err := h.registry.AdminDashboard(s.UserID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			failure(c, http.StatusNotFound, "Admin not found", "/admin")
			return
		}
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin, "stats": stats})
}
