package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bordbuch-backend/internal/access"
	"bordbuch-backend/internal/model"
)

type listMachinesRequest struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Stadt string `json:"stadt"`
}

// ListMachines handles the POST /api/automaten request: the scope-filtered
// machine list for a previously resolved identity.
//
// Teamleiter queries are pushed down to the store as equality filters;
// admin and mitarbeiter go through the (cached) full directory plus the
// in-memory filter. Both paths yield the same result sets.
func (h *Handler) ListMachines(c *gin.Context) {
	var req listMachinesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "role fehlt"})
		return
	}

	role, ok := access.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "unbekannte Rolle"})
		return
	}

	var (
		machines []model.Machine
		err      error
	)

	switch {
	case role == access.RoleTeamleiter && req.Stadt != "":
		machines, err = h.store.ListMachinesBySite(c.Request.Context(), req.Stadt)
	case role == access.RoleTeamleiter && strings.TrimSpace(req.Name) != "":
		machines, err = h.store.ListMachinesByLeitung(c.Request.Context(), strings.TrimSpace(req.Name))
	default:
		var directory []model.Machine
		directory, err = h.directory.ListMachines(c.Request.Context())
		if err == nil {
			identity := access.Identity{Name: req.Name, Role: role, Stadt: req.Stadt}
			machines, err = access.FilterMachines(identity, directory, access.Hints{Name: req.Name, Stadt: req.Stadt})
		}
	}

	if err != nil {
		switch {
		case errors.Is(err, access.ErrMissingScopeOrName):
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "stadt oder name fehlt"})
		case errors.Is(err, access.ErrMissingName):
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "name fehlt"})
		case errors.Is(err, access.ErrUnknownRole):
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "unbekannte Rolle"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Serverfehler"})
		}
		return
	}

	if machines == nil {
		machines = []model.Machine{}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"count":     len(machines),
		"automaten": machines,
	})
}
