package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"press-maintenance-backend/internal/api"
	"press-maintenance-backend/internal/db"
	"press-maintenance-backend/internal/store"
)

type client struct {
	t      *testing.T
	router http.Handler
}

func (c client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c client) create(path string, body any) int64 {
	c.t.Helper()
	w := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		ID int64 `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

// TestMachineLifecycle drives the registry, the ledger and the reports through
// the HTTP API and checks ordering, cascade delete and the printed output.
func TestMachineLifecycle(t *testing.T) {
	// --- Test Setup ---

	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, db.Migrate(testDB))

	// 2. Wire the store and the router the way pressd does.
	gin.SetMode(gin.TestMode)
	h := api.NewHandler(store.NewGormStore(testDB), "Plant 2", time.UTC)
	c := client{t: t, router: api.NewRouter(h, api.RouterConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000})}

	// --- Registry ---

	ids := map[string]int64{}
	for _, number := range []string{"10", "2", "R-5", "-", "514"} {
		ids[number] = c.create("/api/machines", map[string]any{
			"machine_number": number,
			"manufacturer":   "AIDA",
			"tonnage":        110,
		})
	}

	w := c.do(http.MethodGet, "/api/machines", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var machines []struct {
		ID              int64  `json:"id"`
		MachineNumber   string `json:"machine_number"`
		MachineType     string `json:"machine_type"`
		ProductionGroup int    `json:"production_group"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &machines))
	got := make([]string, len(machines))
	for i, m := range machines {
		got[i] = m.MachineNumber
	}
	assert.Equal(t, []string{"2", "10", "514", "R-5", "-"}, got)
	assert.Equal(t, "stamping", machines[0].MachineType)
	assert.Equal(t, 1, machines[0].ProductionGroup)

	w = c.do(http.MethodPost, "/api/machines", map[string]any{"machine_number": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// --- Ledger ---

	c.create("/api/maintenance", map[string]any{
		"machine_id":           ids["2"],
		"maintenance_datetime": "2024-01-15 09:00:00",
	})
	c.create("/api/maintenance", map[string]any{
		"machine_id":               ids["2"],
		"maintenance_datetime":     "2024-04-15 10:30:00",
		"clutch_valve_replacement": "performed",
	})
	c.create("/api/maintenance", map[string]any{
		"machine_id":              ids["10"],
		"maintenance_datetime":    "2024-02-01 08:00:00",
		"overall_judgment":        "caution",
		"brake_valve_replacement": "performed",
	})

	w = c.do(http.MethodPost, "/api/maintenance", map[string]any{
		"machine_id":           9999,
		"maintenance_datetime": "2024-02-01 08:00:00",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var entries []store.MaintenanceEntry
	w = c.do(http.MethodGet, "/api/maintenance", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-04-15 10:30:00", entries[0].MaintenanceDatetime)
	assert.Equal(t, "2", entries[0].MachineNumber)
	assert.Equal(t, "good", string(entries[0].OverallJudgment))

	// --- Reports ---

	var st store.Statistics
	w = c.do(http.MethodGet, "/api/statistics", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, int64(5), st.TotalMachines)
	assert.Equal(t, int64(3), st.TotalMaintenance)
	assert.Equal(t, int64(1), st.ClutchValveReplace)
	assert.Equal(t, int64(1), st.BrakeValveReplace)
	require.Len(t, st.LatestMaintenance, 5)
	assert.Equal(t, "2", st.LatestMaintenance[0].MachineNumber)
	assert.Equal(t, "2024-04-15 10:30:00", st.LatestMaintenance[0].Display())
	assert.Equal(t, store.NotPerformed, st.LatestMaintenance[4].Display())

	w = c.do(http.MethodGet, "/api/reports/statistics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plant 2 - Statistics")
	assert.Contains(t, w.Body.String(), "Total maintenance records: 3")

	// --- Cascade delete ---

	w = c.do(http.MethodDelete, fmt.Sprintf("/api/machines/%d", ids["2"]), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = c.do(http.MethodGet, "/api/maintenance", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "10", entries[0].MachineNumber)

	w = c.do(http.MethodGet, "/api/reports/machines", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Plant 2 - Machine List")
	assert.Contains(t, body, "R-5")
	assert.Equal(t, 4, strings.Count(body, "AIDA"), "one row per remaining machine")

	w = c.do(http.MethodDelete, fmt.Sprintf("/api/machines/%d", ids["2"]), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
