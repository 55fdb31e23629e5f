package store

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"press-maintenance-backend/internal/model"
	"press-maintenance-backend/internal/parse"
)

// Statistics recomputes every aggregate from the two tables.
func (s *gormStore) Statistics(ctx context.Context) (Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st Statistics
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Machine{}).Count(&st.TotalMachines).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Machine{}).
			Select("machine_type, COUNT(*) AS count").
			Group("machine_type").
			Order("machine_type DESC").
			Scan(&st.ByType).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Machine{}).
			Select("production_group, COUNT(*) AS count").
			Group("production_group").
			Order("production_group").
			Scan(&st.ByGroup).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Machine{}).
			Select("production_group, machine_type, COUNT(*) AS count").
			Group("production_group, machine_type").
			Order("production_group").
			Order("machine_type DESC").
			Scan(&st.ByGroupAndType).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.MaintenanceRecord{}).Count(&st.TotalMaintenance).Error; err != nil {
			return err
		}

		if err := tx.Table("press_machines AS p").
			Select("p.id AS machine_id, p.machine_number, MAX(m.maintenance_datetime) AS latest").
			Joins("LEFT JOIN maintenance_records AS m ON m.machine_id = p.id").
			Group("p.id, p.machine_number").
			Scan(&st.LatestMaintenance).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.MaintenanceRecord{}).
			Where("clutch_valve_replacement = ?", model.ValvePerformed).
			Count(&st.ClutchValveReplace).Error; err != nil {
			return err
		}
		return tx.Model(&model.MaintenanceRecord{}).
			Where("brake_valve_replacement = ?", model.ValvePerformed).
			Count(&st.BrakeValveReplace).Error
	})
	if err != nil {
		return Statistics{}, wrap("compute statistics", "", 0, err)
	}

	sort.SliceStable(st.LatestMaintenance, func(i, j int) bool {
		a, b := st.LatestMaintenance[i], st.LatestMaintenance[j]
		if c := parse.CompareMachineNumbers(a.MachineNumber, b.MachineNumber); c != 0 {
			return c < 0
		}
		return a.MachineID < b.MachineID
	})
	return st, nil
}
