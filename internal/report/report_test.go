package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"press-maintenance-backend/internal/model"
	"press-maintenance-backend/internal/store"
)

var testOpts = Options{
	Title:       "Press Machine Management System",
	GeneratedAt: time.Date(2024, 8, 1, 14, 5, 0, 0, time.UTC),
}

func ptr[T any](v T) *T { return &v }

func TestCell(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{"Pads short text", "ab", 4, "ab  "},
		{"Cuts long text", "abcdef", 4, "abcd"},
		{"Wide runes count double", "アイダエンジニアリング", 8, "アイダエ"},
		{"Never splits a wide rune", "アイダ", 5, "アイ "},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cell(tc.in, tc.width))
		})
	}
	assert.Equal(t, "  12", rcell("12", 4))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "2024-04-15 10:30", Truncate("2024-04-15 10:30:00", 16))
	assert.Equal(t, "アイダ", Truncate("アイダエンジニアリング", 7))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, 6, DisplayWidth("ＡＩＤ"))
	assert.Equal(t, "アイ  |", Pad("アイ", 6)+"|")
}

func TestStatistics_LongLatestValue(t *testing.T) {
	st := store.Statistics{LatestMaintenance: []store.LatestMaintenance{
		{MachineID: 1, MachineNumber: "3", Latest: ptr("2024-04-15T10:30:59+09:00")},
		{MachineID: 2, MachineNumber: "4"},
	}}

	var buf bytes.Buffer
	require.NoError(t, Statistics(&buf, testOpts, st))
	assert.Contains(t, buf.String(), "         3: 2024-04-15T10:30\n")
	assert.Contains(t, buf.String(), "         4: "+store.NotPerformed+"\n")
}

func TestMachineList(t *testing.T) {
	machines := []model.Machine{
		{
			ID: 2, MachineNumber: "2", Manufacturer: ptr("Komatsu Industries Corporation"),
			ModelType: ptr("H2F-110"), MachineType: model.MachineTypeGeneral, ProductionGroup: 1,
			Tonnage: ptr(110), CreatedAt: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
			Specification: model.Specification{CapacityKN: ptr(1100.0)},
		},
		{
			ID: 1, MachineNumber: "R-5", MachineType: model.MachineTypeStamping, ProductionGroup: 2,
			CreatedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		},
	}
	st := store.Statistics{
		TotalMachines: 2,
		ByGroupAndType: []store.GroupTypeCount{
			{ProductionGroup: 1, MachineType: model.MachineTypeGeneral, Count: 1},
			{ProductionGroup: 2, MachineType: model.MachineTypeStamping, Count: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, MachineList(&buf, testOpts, machines, st))
	out := buf.String()

	assert.Contains(t, out, "Press Machine Management System - Machine List")
	assert.Contains(t, out, "Generated: 2024-08-01 14:05")
	assert.Contains(t, out, strings.Repeat("-", ruleWidth))
	assert.Contains(t, out, "Komatsu Industries") // cut to 18 columns
	assert.NotContains(t, out, "Komatsu Industries Corporation")
	assert.Contains(t, out, "110t")
	assert.Contains(t, out, "1/25")
	assert.Contains(t, out, "2024-01-10")
	assert.Contains(t, out, unset)
	assert.Contains(t, out, "Group 1 general: 1")
	assert.Contains(t, out, "Group 2 stamping: 1")
	assert.Contains(t, out, "Total machines: 2")

	// rows keep the given order
	assert.Less(t, strings.Index(out, "| 2 "), strings.Index(out, "| R-5"))
}

func TestMaintenanceList(t *testing.T) {
	entries := []store.MaintenanceEntry{
		{
			MaintenanceRecord: model.MaintenanceRecord{
				ID: 3, MaintenanceDatetime: "2024-07-20 11:15:00",
				OverallJudgment:        model.JudgmentGood,
				ClutchValveReplacement: model.ValveNotPerformed,
				BrakeValveReplacement:  model.ValvePerformed,
				Remarks:                ptr("Follow-up after brake valve replacement."),
			},
			MachineNumber: "10",
		},
		{
			MaintenanceRecord: model.MaintenanceRecord{
				ID: 1, MaintenanceDatetime: "2024-01-15 09:00:00",
				OverallJudgment:        model.JudgmentCaution,
				ClutchValveReplacement: model.ValveNotRequired,
				BrakeValveReplacement:  model.ValveNotPerformed,
			},
			MachineNumber: "2",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, MaintenanceList(&buf, testOpts, entries))
	out := buf.String()

	assert.Contains(t, out, "Maintenance Records")
	assert.Contains(t, out, "2024-07-20 11:15 |")
	assert.NotContains(t, out, "11:15:00")
	assert.Contains(t, out, "Follow-up after brak")
	assert.NotContains(t, out, "brake valve replacement.")
	assert.Contains(t, out, "not_required")
	assert.Contains(t, out, "Total maintenance records: 2")
	assert.Less(t, strings.Index(out, "2024-07-20"), strings.Index(out, "2024-01-15"))
}

func TestStatistics(t *testing.T) {
	st := store.Statistics{
		TotalMachines: 2,
		ByType: []store.TypeCount{
			{MachineType: model.MachineTypeStamping, Count: 1},
			{MachineType: model.MachineTypeGeneral, Count: 1},
		},
		ByGroup:          []store.GroupCount{{ProductionGroup: 1, Count: 2}},
		TotalMaintenance: 2,
		LatestMaintenance: []store.LatestMaintenance{
			{MachineID: 1, MachineNumber: "2", Latest: ptr("2024-04-15 10:30:00")},
			{MachineID: 2, MachineNumber: "10"},
		},
		ClutchValveReplace: 1,
		BrakeValveReplace:  0,
	}

	var buf bytes.Buffer
	require.NoError(t, Statistics(&buf, testOpts, st))
	out := buf.String()

	assert.Contains(t, out, "Total machines: 2")
	assert.Contains(t, out, "  stamping: 1")
	assert.Contains(t, out, "  general: 1")
	assert.Contains(t, out, "  Group 1: 2")
	assert.Contains(t, out, "Total maintenance records: 2")
	assert.Contains(t, out, "         2: 2024-04-15 10:30\n")
	assert.Contains(t, out, "        10: not yet performed\n")
	assert.Contains(t, out, "Clutch valve: 1")
	assert.Contains(t, out, "Brake valve: 0")
}
