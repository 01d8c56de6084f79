package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bordbuch-backend/internal/access"
)

type verifyPinRequest struct {
	PIN string `json:"pin"`
}

// VerifyPin handles the POST /api/verify-pin request. Resolution failures
// are business outcomes and answered with 200 and the user-facing message;
// only a store fault becomes a 500.
func (h *Handler) VerifyPin(c *gin.Context) {
	var req verifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "PIN fehlt"})
		return
	}

	identity, err := h.resolver.Resolve(c.Request.Context(), req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrMissingPIN):
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "PIN fehlt"})
		case errors.Is(err, access.ErrInvalidPIN):
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "PIN falsch"})
		case errors.Is(err, access.ErrIncompleteCredential):
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "PIN unvollständig"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Serverfehler"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"name":  identity.Name,
		"role":  identity.Role,
		"stadt": identity.Stadt,
	})
}
