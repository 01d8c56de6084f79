package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bordbuch-backend/internal/model"
)

// The cleaning form's task fields are not enumerated server-side. Only the
// meta fields below are validated; everything else in the payload is passed
// through to storage unchanged.
var cleaningMetaFields = map[string]bool{
	"automatCode":      true,
	"datum":            true,
	"mitarbeiter":      true,
	"stadt":            true,
	"center":           true,
	"auffaelligkeiten": true,
}

// SubmitCleaning handles the POST /api/reinigungen request.
func (h *Handler) SubmitCleaning(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required fields"})
		return
	}

	automatCode := stringField(payload, "automatCode")
	datum := stringField(payload, "datum")
	mitarbeiter := stringField(payload, "mitarbeiter")
	stadt := stringField(payload, "stadt")
	center := stringField(payload, "center")

	if automatCode == "" || datum == "" || mitarbeiter == "" || stadt == "" || center == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required fields"})
		return
	}

	datumDate, err := time.Parse("2006-01-02", datum)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required fields"})
		return
	}

	tasks := make(map[string]any, len(payload))
	for k, v := range payload {
		if !cleaningMetaFields[k] {
			tasks[k] = v
		}
	}
	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal server error"})
		return
	}

	rec := model.CleaningRecord{
		AutomatCode:      automatCode,
		Stadt:            stadt,
		Center:           center,
		Mitarbeiter:      mitarbeiter,
		Datum:            datumDate,
		Tasks:            string(tasksJSON),
		Auffaelligkeiten: stringField(payload, "auffaelligkeiten"),
	}

	if err := h.store.CreateCleaning(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type lastCleaningRequest struct {
	AutomatCode string `json:"automatCode"`
}

// LastCleaning handles the POST /api/reinigungen/letzte request. A missing
// machine code or a machine without records is a null result, not an error.
func (h *Handler) LastCleaning(c *gin.Context) {
	var req lastCleaningRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AutomatCode == "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "last": nil})
		return
	}

	rec, err := h.store.LatestCleaning(c.Request.Context(), req.AutomatCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "last": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"last": gin.H{
			"datum": rec.Datum.Format("2006-01-02"),
			"name":  rec.Mitarbeiter,
		},
	})
}

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
