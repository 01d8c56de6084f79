package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bordbuch-backend/config"
	"bordbuch-backend/internal/api"
	"bordbuch-backend/internal/cache"
	"bordbuch-backend/internal/model"
	"bordbuch-backend/internal/store"
)

// TestLoginToSubmissionFlow walks the whole operator workflow: PIN login,
// scoped machine listing, and a record submission against one machine.
func TestLoginToSubmissionFlow(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open("file:integration_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	err = testDB.AutoMigrate(
		&model.Credential{},
		&model.Machine{},
		&model.CleaningRecord{},
		&model.MaintenanceRecord{},
		&model.ChecklistItem{},
		&model.WeeklyCheck{},
		&model.PushSubscription{},
	)
	require.NoError(t, err)

	require.NoError(t, testDB.Create(&[]model.Credential{
		{PIN: "1234", Name: "Maria", Role: "mitarbeiter"},
		{PIN: "9999", Name: "Tom", Role: "teamleiter"},
	}).Error)
	require.NoError(t, testDB.Create(&[]model.Machine{
		{Code: "A1", Mitarbeiter: "Maria"},
		{Code: "A2", Mitarbeiter: "Lukas"},
		{Code: "B1", Stadt: "Berlin", Leitung: "Tom"},
		{Code: "B2", Stadt: "Berlin", Leitung: "Tom"},
	}).Error)

	appStore := store.NewGormStore(testDB)
	directory := cache.NewDirectory(appStore, time.Hour, nil)
	cfg := &config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000, CacheTTLSeconds: 1}
	router := api.NewRouter(cfg, appStore, directory, nil, nil)

	post := func(path string, body any) map[string]any {
		payload, err := json.Marshal(body)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		return decoded
	}

	t.Run("mitarbeiter sees only assigned machines", func(t *testing.T) {
		login := post("/api/verify-pin", map[string]string{"pin": "1234"})
		require.Equal(t, true, login["ok"])
		assert.Equal(t, "Maria", login["name"])
		assert.Equal(t, "mitarbeiter", login["role"])
		assert.Equal(t, "", login["stadt"]) // machine A1 has no stadt to derive

		listing := post("/api/automaten", map[string]any{
			"role": login["role"], "name": login["name"], "stadt": login["stadt"],
		})
		require.Equal(t, true, listing["ok"])
		assert.Equal(t, float64(1), listing["count"])

		machines := listing["automaten"].([]any)
		first := machines[0].(map[string]any)
		assert.Equal(t, "A1", first["code"])
	})

	t.Run("teamleiter scope derives and filters by stadt", func(t *testing.T) {
		login := post("/api/verify-pin", map[string]string{"pin": "9999"})
		require.Equal(t, true, login["ok"])
		assert.Equal(t, "Berlin", login["stadt"])

		listing := post("/api/automaten", map[string]any{
			"role": login["role"], "name": login["name"], "stadt": login["stadt"],
		})
		require.Equal(t, true, listing["ok"])
		assert.Equal(t, float64(2), listing["count"])
	})

	t.Run("rejected logins", func(t *testing.T) {
		missing := post("/api/verify-pin", map[string]string{"pin": ""})
		assert.Equal(t, false, missing["ok"])
		assert.Equal(t, "PIN fehlt", missing["error"])

		wrong := post("/api/verify-pin", map[string]string{"pin": "0000"})
		assert.Equal(t, false, wrong["ok"])
		assert.Equal(t, "PIN falsch", wrong["error"])
	})

	t.Run("submission against the selected machine", func(t *testing.T) {
		result := post("/api/reinigungen", map[string]any{
			"automatCode":        "A1",
			"datum":              "2026-08-28",
			"mitarbeiter":        "Maria",
			"stadt":              "Berlin",
			"center":             "Mitte",
			"sieb_gereinigt":     true,
			"scheiben_gereinigt": true,
		})
		require.Equal(t, true, result["ok"])

		last := post("/api/reinigungen/letzte", map[string]string{"automatCode": "A1"})
		require.Equal(t, true, last["ok"])
		entry := last["last"].(map[string]any)
		assert.Equal(t, "2026-08-28", entry["datum"])
		assert.Equal(t, "Maria", entry["name"])
	})
}
