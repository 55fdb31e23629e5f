package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"press-maintenance-backend/internal/model"
)

type seedMachine struct {
	number, equipment, maker, modelType, serial string
	machineType                                 model.MachineType
	group                                       int
}

type seedRecord struct {
	machine       int // index into seedMachines
	at            string
	judgment      model.Judgment
	clutch, brake model.ValveReplacement
	remarks       string
}

var seedMachines = []seedMachine{
	{"P001", "EQ-001", "アイダエンジニアリング", "NC1-110", "S20240001", model.MachineTypeStamping, 1},
	{"P002", "EQ-002", "コマツ産機", "H2F-110", "S20240002", model.MachineTypeGeneral, 1},
	{"P003", "EQ-003", "アミノ", "AP-200", "S20240003", model.MachineTypeStamping, 2},
	{"P004", "EQ-004", "ヤマダドビー", "TPE-100", "S20240004", model.MachineTypeGeneral, 2},
	{"P005", "EQ-005", "アイダエンジニアリング", "NC1-200", "S20240005", model.MachineTypeStamping, 3},
}

var seedRecords = []seedRecord{
	{0, "2024-01-15 09:00:00", model.JudgmentGood, model.ValveNotPerformed, model.ValveNotPerformed, "Scheduled inspection. No findings."},
	{0, "2024-04-15 10:30:00", model.JudgmentGood, model.ValvePerformed, model.ValveNotPerformed, "Clutch valve replaced preventively."},
	{1, "2024-01-20 14:00:00", model.JudgmentCaution, model.ValveNotPerformed, model.ValvePerformed, "Slow brake response. Brake valve replaced."},
	{1, "2024-07-20 11:15:00", model.JudgmentGood, model.ValveNotPerformed, model.ValveNotPerformed, "Follow-up after brake valve replacement. Normal."},
	{2, "2024-02-10 08:45:00", model.JudgmentGood, model.ValveNotPerformed, model.ValveNotPerformed, "Monthly inspection. Lubricant topped up."},
	{3, "2024-03-05 16:20:00", model.JudgmentNeedsRepair, model.ValvePerformed, model.ValvePerformed, "Clutch and brake valves faulty. Both replaced."},
	{4, "2024-01-25 13:30:00", model.JudgmentGood, model.ValveNotPerformed, model.ValveNotPerformed, "First inspection of newly installed press."},
}

// Seed inserts the example presses and maintenance history. It does nothing
// when press_machines already holds rows, so it can run on every start.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Machine{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count machines before seeding: %w", err)
	}
	if count > 0 {
		log.Printf("Seed skipped: %d machines already present.", count)
		return false, nil
	}

	now := time.Now()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		machines := make([]model.Machine, len(seedMachines))
		for i, sm := range seedMachines {
			machines[i] = model.Machine{
				MachineNumber:   sm.number,
				EquipmentNumber: strPtr(sm.equipment),
				Manufacturer:    strPtr(sm.maker),
				ModelType:       strPtr(sm.modelType),
				SerialNumber:    strPtr(sm.serial),
				MachineType:     sm.machineType,
				ProductionGroup: sm.group,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
		}
		if err := tx.Omit(clause.Associations).Create(&machines).Error; err != nil {
			return fmt.Errorf("failed to seed machines: %w", err)
		}

		records := make([]model.MaintenanceRecord, len(seedRecords))
		for i, sr := range seedRecords {
			records[i] = model.MaintenanceRecord{
				MachineID:              machines[sr.machine].ID,
				MaintenanceDatetime:    sr.at,
				OverallJudgment:        sr.judgment,
				ClutchValveReplacement: sr.clutch,
				BrakeValveReplacement:  sr.brake,
				Remarks:                strPtr(sr.remarks),
				CreatedAt:              now,
			}
		}
		if err := tx.Omit(clause.Associations).Create(&records).Error; err != nil {
			return fmt.Errorf("failed to seed maintenance records: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Printf("Seeded %d machines and %d maintenance records.", len(seedMachines), len(seedRecords))
	return true, nil
}

func strPtr(s string) *string { return &s }
