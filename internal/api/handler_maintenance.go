package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bordbuch-backend/internal/model"
)

type submitMaintenanceRequest struct {
	AutomatCode       string `json:"automatCode"`
	Stadt             string `json:"stadt"`
	Center            string `json:"center"`
	Datum             string `json:"datum"`
	Name              string `json:"name"`
	WartungselementID *int64 `json:"wartungselementId"`
	Bezeichnung       string `json:"bezeichnung"`
	Bemerkung         string `json:"bemerkung"`
	PhotoURL          string `json:"photoUrl"`
}

// SubmitMaintenance handles the POST /api/wartungen request. The entry's
// label is resolved from the checklist item when an element id is given;
// the submitted label is the fallback.
func (h *Handler) SubmitMaintenance(c *gin.Context) {
	var req submitMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "Pflichtfelder fehlen"})
		return
	}

	if req.AutomatCode == "" || req.Datum == "" || req.Name == "" {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "Pflichtfelder fehlen"})
		return
	}
	if req.WartungselementID == nil && req.Bezeichnung == "" {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "Keine Wartung angegeben"})
		return
	}

	datum, err := parseDatum(req.Datum)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "Pflichtfelder fehlen"})
		return
	}

	bezeichnung := req.Bezeichnung
	if req.WartungselementID != nil {
		item, err := h.store.GetChecklistItem(c.Request.Context(), *req.WartungselementID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Wartung konnte nicht gespeichert werden"})
			return
		}
		if item != nil && item.Bezeichnung != "" {
			bezeichnung = item.Bezeichnung
		}
	}

	var photoURL string
	if strings.HasPrefix(req.PhotoURL, "https://") {
		photoURL = req.PhotoURL
	}

	rec := model.MaintenanceRecord{
		AutomatCode:       req.AutomatCode,
		Stadt:             req.Stadt,
		Center:            req.Center,
		Datum:             datum,
		Name:              req.Name,
		Bezeichnung:       bezeichnung,
		WartungselementID: req.WartungselementID,
		Bemerkung:         req.Bemerkung,
		PhotoURL:          photoURL,
		Quelle:            "reiniger-app",
	}

	if err := h.store.CreateMaintenance(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Wartung konnte nicht gespeichert werden"})
		return
	}

	if h.notifier != nil {
		h.notifier.Dispatch(rec.AutomatCode)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListChecklistItems handles the GET /api/wartungselemente request.
func (h *Handler) ListChecklistItems(c *gin.Context) {
	items, err := h.store.ListChecklistItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal server error"})
		return
	}
	if items == nil {
		items = []model.ChecklistItem{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items})
}

// parseDatum accepts the date-only form format and full RFC3339 timestamps.
func parseDatum(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
