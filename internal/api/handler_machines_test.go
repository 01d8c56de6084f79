package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bordbuch-backend/internal/model"
)

func TestListMachinesEndpoint(t *testing.T) {
	router, testDB := setupTestRouter(t, "list_machines_test")

	machines := []model.Machine{
		{Code: "B1", Stadt: "Berlin", Center: "Mitte", Leitung: "Tom", Mitarbeiter: "anna"},
		{Code: "B2", Stadt: "Berlin", Center: "Ost", Leitung: "Tom", Mitarbeiter: "Lukas"},
		{Code: "H1", Stadt: "Hamburg", Center: "Nord", Leitung: "Eva", Mitarbeiter: "Maria"},
	}
	require.NoError(t, testDB.Create(&machines).Error)

	t.Run("missing role", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{})
		assert.Equal(t, false, resp["ok"])
		assert.Equal(t, "role fehlt", resp["error"])
	})

	t.Run("unknown role", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "hausmeister"})
		assert.Equal(t, false, resp["ok"])
		assert.Equal(t, "unbekannte Rolle", resp["error"])
	})

	t.Run("admin sees everything", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "admin"})
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, float64(3), resp["count"])
		assert.Equal(t, []string{"B1", "B2", "H1"}, responseCodes(resp))
	})

	t.Run("teamleiter by stadt", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "teamleiter", "stadt": "Berlin"})
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, []string{"B1", "B2"}, responseCodes(resp))
	})

	t.Run("teamleiter by name", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "teamleiter", "name": " Tom "})
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, []string{"B1", "B2"}, responseCodes(resp))
	})

	t.Run("teamleiter without stadt or name", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "teamleiter"})
		assert.Equal(t, false, resp["ok"])
		assert.Equal(t, "stadt oder name fehlt", resp["error"])
	})

	t.Run("mitarbeiter match is case-insensitive", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "mitarbeiter", "name": " Anna "})
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, []string{"B1"}, responseCodes(resp))
	})

	t.Run("mitarbeiter without name", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "mitarbeiter"})
		assert.Equal(t, false, resp["ok"])
		assert.Equal(t, "name fehlt", resp["error"])
	})

	t.Run("empty result is ok", func(t *testing.T) {
		_, resp := postJSON(t, router, "/api/automaten", map[string]string{"role": "mitarbeiter", "name": "Niemand"})
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, float64(0), resp["count"])
		assert.Empty(t, responseCodes(resp))
	})

	// The teamleiter paths are pushed down to the store; admin and
	// mitarbeiter filter the cached directory in memory. Both must agree.
	t.Run("pushdown matches in-memory filtering", func(t *testing.T) {
		_, byStadt := postJSON(t, router, "/api/automaten", map[string]string{"role": "teamleiter", "stadt": "Berlin"})
		_, all := postJSON(t, router, "/api/automaten", map[string]string{"role": "admin"})

		var wantCodes []string
		for i, m := range machines {
			if m.Stadt == "Berlin" {
				wantCodes = append(wantCodes, machines[i].Code)
			}
		}
		assert.Equal(t, wantCodes, responseCodes(byStadt))
		assert.Subset(t, responseCodes(all), responseCodes(byStadt))
	})
}

func responseCodes(resp map[string]any) []string {
	raw, _ := resp["automaten"].([]any)
	var codes []string
	for _, entry := range raw {
		m, _ := entry.(map[string]any)
		if code, ok := m["code"].(string); ok {
			codes = append(codes, code)
		}
	}
	return codes
}
