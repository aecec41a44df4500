package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kaamconnect/internal/registry"
)

// failure writes the flash-style error notice plus the page the client
// should send the user back to.
func failure(c *gin.Context, status int, msg, redirect string) {
	c.JSON(status, gin.H{"error": msg, "redirect": redirect})
}

// signupFailure maps registry errors to the user-facing notices. Validation
// and duplicate outcomes each get a specific reason; anything else is a
// storage fault and stays generic.
func signupFailure(c *gin.Context, err error, redirect, missingMsg string) {
	switch {
	case errors.Is(err, registry.ErrMissingFields):
		failure(c, http.StatusBadRequest, missingMsg, redirect)
	case errors.Is(err, registry.ErrPasswordMismatch):
		failure(c, http.StatusBadRequest, "Passwords do not match!", redirect)
	case errors.Is(err, registry.ErrPasswordTooShort):
		failure(c, http.StatusBadRequest, "Password must be at least 6 characters long!", redirect)
	case errors.Is(err, registry.ErrInvalidEmail):
		failure(c, http.StatusBadRequest, "Invalid email address!", redirect)
	case errors.Is(err, registry.ErrInvalidPhone):
		failure(c, http.StatusBadRequest, "Invalid phone number! Must be 10 digits.", redirect)
	case errors.Is(err, registry.ErrDuplicatePhone):
		failure(c, http.StatusConflict, "Phone number already registered!", redirect)
	case errors.Is(err, registry.ErrDuplicateEmail):
		failure(c, http.StatusConflict, "Email already registered!", redirect)
	default:
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", redirect)
	}
}

// signinFailure maps sign-in errors; the invalid-credentials notice is the
// same whether the identifier or the password was wrong.
func signinFailure(c *gin.Context, err error, redirect, invalidMsg string) {
	switch {
	case errors.Is(err, registry.ErrMissingFields):
		failure(c, http.StatusBadRequest, "All fields are required!", redirect)
	case errors.Is(err, registry.ErrInvalidCredentials):
		failure(c, http.StatusUnauthorized, invalidMsg, redirect)
	default:
		failure(c, http.StatusInternalServerError, "Something went wrong. Please try again.", redirect)
	}
}
