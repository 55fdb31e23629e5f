package model

import "time"

// MachineType classifies a press by its use.
type MachineType string

const (
	MachineTypeStamping MachineType = "stamping"
	MachineTypeGeneral  MachineType = "general"
)

// Valid reports whether t is one of the known machine types.
func (t MachineType) Valid() bool {
	return t == MachineTypeStamping || t == MachineTypeGeneral
}

// ProductionGroups lists the operational groups a machine can belong to.
var ProductionGroups = []int{1, 2, 3}

// ValidProductionGroup reports whether g is an assignable production group.
func ValidProductionGroup(g int) bool {
	for _, pg := range ProductionGroups {
		if g == pg {
			return true
		}
	}
	return false
}

// Machine represents one physical press.
type Machine struct {
	ID              int64       `gorm:"primaryKey" json:"id"`
	MachineNumber   string      `gorm:"size:64;not null;index" json:"machine_number"`
	EquipmentNumber *string     `gorm:"size:64" json:"equipment_number"`
	Manufacturer    *string     `gorm:"size:128" json:"manufacturer"`
	ModelType       *string     `gorm:"size:128" json:"model_type"`
	SerialNumber    *string     `gorm:"size:128" json:"serial_number"`
	MachineType     MachineType `gorm:"size:16;not null;check:chk_press_machines_machine_type,machine_type IN ('stamping','general')" json:"machine_type"`
	ProductionGroup int         `gorm:"not null;check:chk_press_machines_production_group,production_group IN (1,2,3)" json:"production_group"`
	Tonnage         *int        `json:"tonnage"`
	Specification   `gorm:"embedded" json:"specification"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

// TableName keeps the table name used by existing press_machine.db files.
func (Machine) TableName() string { return "press_machines" }
