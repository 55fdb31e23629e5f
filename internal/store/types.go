package store

import (
	"press-maintenance-backend/internal/model"
)

// MachineFields carries every mutable column of a machine. Create stores
// them as given; Update replaces all of them.
type MachineFields struct {
	MachineNumber   string              `json:"machine_number"`
	EquipmentNumber *string             `json:"equipment_number"`
	Manufacturer    *string             `json:"manufacturer"`
	ModelType       *string             `json:"model_type"`
	SerialNumber    *string             `json:"serial_number"`
	MachineType     model.MachineType   `json:"machine_type"`
	ProductionGroup int                 `json:"production_group"`
	Tonnage         *int                `json:"tonnage"`
	Specification   model.Specification `json:"specification"`
}

// MaintenanceFields carries every mutable column of a maintenance record.
type MaintenanceFields struct {
	MachineID              int64                  `json:"machine_id"`
	MaintenanceDatetime    string                 `json:"maintenance_datetime"`
	OverallJudgment        model.Judgment         `json:"overall_judgment"`
	ClutchValveReplacement model.ValveReplacement `json:"clutch_valve_replacement"`
	BrakeValveReplacement  model.ValveReplacement `json:"brake_valve_replacement"`
	Remarks                *string                `json:"remarks"`
}

// MaintenanceEntry is a maintenance record joined with its machine number.
type MaintenanceEntry struct {
	model.MaintenanceRecord
	MachineNumber string `json:"machine_number"`
}

// TypeCount is the number of machines of one machine type.
type TypeCount struct {
	MachineType model.MachineType `json:"machine_type"`
	Count       int64             `json:"count"`
}

// GroupCount is the number of machines in one production group.
type GroupCount struct {
	ProductionGroup int   `json:"production_group"`
	Count           int64 `json:"count"`
}

// GroupTypeCount is the number of machines per production group and type.
type GroupTypeCount struct {
	ProductionGroup int               `json:"production_group"`
	MachineType     model.MachineType `json:"machine_type"`
	Count           int64             `json:"count"`
}

// LatestMaintenance is the most recent maintenance_datetime of a machine.
// Latest is nil for machines that were never maintained.
type LatestMaintenance struct {
	MachineID     int64   `json:"machine_id"`
	MachineNumber string  `json:"machine_number"`
	Latest        *string `json:"latest"`
}

// NotPerformed is shown for machines without any maintenance record.
const NotPerformed = "not yet performed"

// Display returns the latest datetime or NotPerformed.
func (l LatestMaintenance) Display() string {
	if l.Latest == nil || *l.Latest == "" {
		return NotPerformed
	}
	return *l.Latest
}

// Statistics gathers every aggregate shown on the analysis view and in the
// printed reports. It is recomputed from the tables on each call.
type Statistics struct {
	TotalMachines      int64               `json:"total_machines"`
	ByType             []TypeCount         `json:"by_type"`
	ByGroup            []GroupCount        `json:"by_group"`
	ByGroupAndType     []GroupTypeCount    `json:"by_group_and_type"`
	TotalMaintenance   int64               `json:"total_maintenance"`
	LatestMaintenance  []LatestMaintenance `json:"latest_maintenance"`
	ClutchValveReplace int64               `json:"clutch_valve_replacements"`
	BrakeValveReplace  int64               `json:"brake_valve_replacements"`
}

// CountForType returns the count reported for t, 0 when absent.
func (s Statistics) CountForType(t model.MachineType) int64 {
	for _, tc := range s.ByType {
		if tc.MachineType == t {
			return tc.Count
		}
	}
	return 0
}
