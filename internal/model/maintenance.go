package model

import "time"

// Judgment is the categorical outcome of an inspection.
type Judgment string

const (
	JudgmentGood        Judgment = "good"
	JudgmentCaution     Judgment = "caution"
	JudgmentNeedsRepair Judgment = "needs_repair"
	JudgmentAbnormal    Judgment = "abnormal"
)

// Valid reports whether j is a known judgment.
func (j Judgment) Valid() bool {
	switch j {
	case JudgmentGood, JudgmentCaution, JudgmentNeedsRepair, JudgmentAbnormal:
		return true
	}
	return false
}

// ValveReplacement records what happened to a clutch or brake valve.
type ValveReplacement string

const (
	ValveNotPerformed ValveReplacement = "not_performed"
	ValvePerformed    ValveReplacement = "performed"
	ValveNotRequired  ValveReplacement = "not_required"
)

// Valid reports whether v is a known replacement state.
func (v ValveReplacement) Valid() bool {
	switch v {
	case ValveNotPerformed, ValvePerformed, ValveNotRequired:
		return true
	}
	return false
}

// MaintenanceRecord is one maintenance event on a machine.
type MaintenanceRecord struct {
	ID                     int64            `gorm:"primaryKey" json:"id"`
	MachineID              int64            `gorm:"index;not null" json:"machine_id"`
	MaintenanceDatetime    string           `gorm:"size:32;not null;index" json:"maintenance_datetime"`
	OverallJudgment        Judgment         `gorm:"size:16;not null;check:chk_maintenance_records_overall_judgment,overall_judgment IN ('good','caution','needs_repair','abnormal')" json:"overall_judgment"`
	ClutchValveReplacement ValveReplacement `gorm:"size:16;not null;check:chk_maintenance_records_clutch_valve,clutch_valve_replacement IN ('not_performed','performed','not_required')" json:"clutch_valve_replacement"`
	BrakeValveReplacement  ValveReplacement `gorm:"size:16;not null;check:chk_maintenance_records_brake_valve,brake_valve_replacement IN ('not_performed','performed','not_required')" json:"brake_valve_replacement"`
	Remarks                *string          `json:"remarks"`
	CreatedAt              time.Time        `gorm:"not null" json:"created_at"`

	// Associations. Rows are removed explicitly before their machine.
	Machine Machine `gorm:"foreignKey:MachineID" json:"-"`
}

// TableName keeps the table name used by existing press_machine.db files.
func (MaintenanceRecord) TableName() string { return "maintenance_records" }
