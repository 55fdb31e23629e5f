package store

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"press-maintenance-backend/internal/model"
)

const maintenanceEntity = "maintenance record"

// DatetimeLayouts are the accepted maintenance_datetime formats. All of them
// sort lexically in chronological order.
var DatetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type maintenanceRow struct {
	ID                     int64
	MachineID              int64
	MaintenanceDatetime    string
	OverallJudgment        model.Judgment
	ClutchValveReplacement model.ValveReplacement
	BrakeValveReplacement  model.ValveReplacement
	Remarks                *string
	CreatedAt              time.Time
	MachineNumber          string
}

// ListMaintenance returns every record with its machine number, newest
// maintenance_datetime first.
func (s *gormStore) ListMaintenance(ctx context.Context) ([]MaintenanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []maintenanceRow
	err := s.db.WithContext(ctx).
		Table("maintenance_records AS m").
		Select("m.id, m.machine_id, m.maintenance_datetime, m.overall_judgment, " +
			"m.clutch_valve_replacement, m.brake_valve_replacement, m.remarks, m.created_at, " +
			"p.machine_number").
		Joins("JOIN press_machines AS p ON p.id = m.machine_id").
		Order("m.maintenance_datetime DESC").
		Order("m.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("list maintenance records", maintenanceEntity, 0, err)
	}

	entries := make([]MaintenanceEntry, len(rows))
	for i, r := range rows {
		entries[i] = MaintenanceEntry{
			MaintenanceRecord: model.MaintenanceRecord{
				ID:                     r.ID,
				MachineID:              r.MachineID,
				MaintenanceDatetime:    r.MaintenanceDatetime,
				OverallJudgment:        r.OverallJudgment,
				ClutchValveReplacement: r.ClutchValveReplacement,
				BrakeValveReplacement:  r.BrakeValveReplacement,
				Remarks:                r.Remarks,
				CreatedAt:              r.CreatedAt,
			},
			MachineNumber: r.MachineNumber,
		}
	}
	return entries, nil
}

// GetMaintenance returns the record with the given id.
func (s *gormStore) GetMaintenance(ctx context.Context, id int64) (model.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r model.MaintenanceRecord
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return model.MaintenanceRecord{}, wrap("get maintenance record", maintenanceEntity, id, err)
	}
	return r, nil
}

// CreateMaintenance validates f and inserts a record for an existing machine.
func (s *gormStore) CreateMaintenance(ctx context.Context, f MaintenanceFields) (int64, error) {
	if err := normalizeMaintenance(&f); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.MaintenanceRecord{CreatedAt: s.stamp()}
	applyMaintenanceFields(&r, f)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireMachine(tx, f.MachineID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&r).Error
	})
	if err != nil {
		return 0, wrap("create maintenance record", maintenanceEntity, 0, err)
	}
	return r.ID, nil
}

// UpdateMaintenance replaces every mutable field of record id.
func (s *gormStore) UpdateMaintenance(ctx context.Context, id int64, f MaintenanceFields) error {
	if err := normalizeMaintenance(&f); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r model.MaintenanceRecord
		if err := tx.First(&r, id).Error; err != nil {
			return err
		}
		if err := requireMachine(tx, f.MachineID); err != nil {
			return err
		}
		applyMaintenanceFields(&r, f)
		return tx.Omit(clause.Associations).Save(&r).Error
	})
	return wrap("update maintenance record", maintenanceEntity, id, err)
}

// DeleteMaintenance removes a single record.
func (s *gormStore) DeleteMaintenance(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.WithContext(ctx).Delete(&model.MaintenanceRecord{}, id)
	if res.Error != nil {
		return wrap("delete maintenance record", maintenanceEntity, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: maintenanceEntity, ID: id}
	}
	return nil
}

// requireMachine fails with NotFoundError unless machine id exists.
func requireMachine(tx *gorm.DB, id int64) error {
	var count int64
	if err := tx.Model(&model.Machine{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: machineEntity, ID: id}
	}
	return nil
}

func normalizeMaintenance(f *MaintenanceFields) error {
	if f.MachineID <= 0 {
		return &ValidationError{Field: "machine_id", Reason: "a machine must be selected"}
	}

	f.MaintenanceDatetime = strings.TrimSpace(f.MaintenanceDatetime)
	if f.MaintenanceDatetime == "" {
		return &ValidationError{Field: "maintenance_datetime", Reason: "is required"}
	}
	if !validDatetime(f.MaintenanceDatetime) {
		return &ValidationError{Field: "maintenance_datetime", Reason: "must look like YYYY-MM-DD HH:MM[:SS]"}
	}

	if f.OverallJudgment == "" {
		f.OverallJudgment = model.JudgmentGood
	}
	if !f.OverallJudgment.Valid() {
		return &ValidationError{Field: "overall_judgment", Reason: "must be good, caution, needs_repair or abnormal"}
	}
	if f.ClutchValveReplacement == "" {
		f.ClutchValveReplacement = model.ValveNotPerformed
	}
	if !f.ClutchValveReplacement.Valid() {
		return &ValidationError{Field: "clutch_valve_replacement", Reason: "must be not_performed, performed or not_required"}
	}
	if f.BrakeValveReplacement == "" {
		f.BrakeValveReplacement = model.ValveNotPerformed
	}
	if !f.BrakeValveReplacement.Valid() {
		return &ValidationError{Field: "brake_valve_replacement", Reason: "must be not_performed, performed or not_required"}
	}
	return nil
}

func validDatetime(s string) bool {
	for _, layout := range DatetimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func applyMaintenanceFields(r *model.MaintenanceRecord, f MaintenanceFields) {
	r.MachineID = f.MachineID
	r.MaintenanceDatetime = f.MaintenanceDatetime
	r.OverallJudgment = f.OverallJudgment
	r.ClutchValveReplacement = f.ClutchValveReplacement
	r.BrakeValveReplacement = f.BrakeValveReplacement
	r.Remarks = f.Remarks
}
