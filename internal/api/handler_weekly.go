package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bordbuch-backend/internal/model"
)

type weeklyTaskInput struct {
	Done     bool   `json:"done"`
	PhotoURL string `json:"photoUrl"`
}

type weeklyTask struct {
	Done     bool      `json:"done"`
	DoneAt   time.Time `json:"doneAt"`
	PhotoURL string    `json:"photoUrl,omitempty"`
}

type submitWeeklyRequest struct {
	AutomatCode string                     `json:"automatCode"`
	Mitarbeiter string                     `json:"mitarbeiter"`
	Woche       string                     `json:"woche"`
	Tasks       map[string]weeklyTaskInput `json:"tasks"`
}

// SubmitWeeklyCheck handles the POST /api/wochenwartungen request. Only
// tasks marked done are stored; completion time is stamped server-side and
// photo URLs pass through only when they are https.
func (h *Handler) SubmitWeeklyCheck(c *gin.Context) {
	var req submitWeeklyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required fields"})
		return
	}

	automatCode := strings.TrimSpace(req.AutomatCode)
	mitarbeiter := strings.TrimSpace(req.Mitarbeiter)
	woche := strings.TrimSpace(req.Woche)

	if automatCode == "" || mitarbeiter == "" || woche == "" || req.Tasks == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing required fields"})
		return
	}

	now := time.Now().UTC()
	tasks := make(map[string]weeklyTask)
	for k, t := range req.Tasks {
		key := strings.TrimSpace(k)
		if key == "" || !t.Done {
			continue
		}
		task := weeklyTask{Done: true, DoneAt: now}
		if strings.HasPrefix(t.PhotoURL, "https://") {
			task.PhotoURL = t.PhotoURL
		}
		tasks[key] = task
	}

	if len(tasks) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "No tasks selected"})
		return
	}

	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal server error"})
		return
	}

	rec := model.WeeklyCheck{
		AutomatCode: automatCode,
		Mitarbeiter: mitarbeiter,
		Woche:       woche,
		Status:      "erledigt",
		Tasks:       string(tasksJSON),
	}

	if err := h.store.CreateWeeklyCheck(c.Request.Context(), &rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
