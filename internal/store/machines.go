package store

import (
	"context"
	"log"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"press-maintenance-backend/internal/model"
	"press-maintenance-backend/internal/parse"
)

const machineEntity = "machine"

// ListMachines returns all machines, or those whose machine number,
// manufacturer or model type contains filter (case-insensitive), in
// machine-number display order.
func (s *gormStore) ListMachines(ctx context.Context, filter string) ([]model.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var machines []model.Machine
	if err := s.db.WithContext(ctx).Order("id").Find(&machines).Error; err != nil {
		return nil, wrap("list machines", machineEntity, 0, err)
	}

	// SQL LOWER folds ASCII only, so matching happens here with full
	// Unicode case folding.
	if f := strings.TrimSpace(filter); f != "" {
		machines = filterMachines(machines, f)
	}
	SortMachines(machines)
	return machines, nil
}

func filterMachines(machines []model.Machine, filter string) []model.Machine {
	fold := cases.Fold()
	needle := fold.String(filter)
	contains := func(v *string) bool {
		return v != nil && strings.Contains(fold.String(*v), needle)
	}

	kept := machines[:0]
	for _, m := range machines {
		if contains(&m.MachineNumber) || contains(m.Manufacturer) || contains(m.ModelType) {
			kept = append(kept, m)
		}
	}
	return kept
}

// SortMachines orders machines by machine number, ties broken by id.
func SortMachines(machines []model.Machine) {
	sort.SliceStable(machines, func(i, j int) bool {
		if c := parse.CompareMachineNumbers(machines[i].MachineNumber, machines[j].MachineNumber); c != 0 {
			return c < 0
		}
		return machines[i].ID < machines[j].ID
	})
}

// GetMachine returns the machine with the given id.
func (s *gormStore) GetMachine(ctx context.Context, id int64) (model.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var m model.Machine
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return model.Machine{}, wrap("get machine", machineEntity, id, err)
	}
	return m, nil
}

// CreateMachine validates f and inserts a new machine.
func (s *gormStore) CreateMachine(ctx context.Context, f MachineFields) (int64, error) {
	if err := normalizeMachine(&f); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	m := model.Machine{CreatedAt: now, UpdatedAt: now}
	applyMachineFields(&m, f)

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return 0, wrap("create machine", machineEntity, 0, err)
	}
	return m.ID, nil
}

// UpdateMachine replaces every mutable field of machine id.
func (s *gormStore) UpdateMachine(ctx context.Context, id int64, f MachineFields) error {
	if err := normalizeMachine(&f); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Machine
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		applyMachineFields(&m, f)
		m.UpdatedAt = s.stamp()
		return tx.Omit(clause.Associations).Save(&m).Error
	})
	return wrap("update machine", machineEntity, id, err)
}

// DeleteMachine removes the machine's maintenance records and then the
// machine itself, in one transaction.
func (s *gormStore) DeleteMachine(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Machine
		if err := tx.Select("id").First(&m, id).Error; err != nil {
			return err
		}

		res := tx.Where("machine_id = ?", id).Delete(&model.MaintenanceRecord{})
		if res.Error != nil {
			return res.Error
		}
		removed := res.RowsAffected

		if err := tx.Delete(&model.Machine{}, id).Error; err != nil {
			return err
		}
		log.Printf("Deleted machine %d with %d maintenance records.", id, removed)
		return nil
	})
	return wrap("delete machine", machineEntity, id, err)
}

func normalizeMachine(f *MachineFields) error {
	f.MachineNumber = strings.TrimSpace(f.MachineNumber)
	if f.MachineNumber == "" {
		return &ValidationError{Field: "machine_number", Reason: "is required"}
	}
	if f.MachineType == "" {
		f.MachineType = model.MachineTypeStamping
	}
	if !f.MachineType.Valid() {
		return &ValidationError{Field: "machine_type", Reason: "must be stamping or general"}
	}
	if f.ProductionGroup == 0 {
		f.ProductionGroup = 1
	}
	if !model.ValidProductionGroup(f.ProductionGroup) {
		return &ValidationError{Field: "production_group", Reason: "must be 1, 2 or 3"}
	}
	if f.Tonnage != nil && *f.Tonnage < 0 {
		return &ValidationError{Field: "tonnage", Reason: "must not be negative"}
	}
	if mm := f.Specification.ManufactureMonth; mm != nil && (*mm < 1 || *mm > 12) {
		return &ValidationError{Field: "manufacture_month", Reason: "must be between 1 and 12"}
	}
	return nil
}

func applyMachineFields(m *model.Machine, f MachineFields) {
	m.MachineNumber = f.MachineNumber
	m.EquipmentNumber = f.EquipmentNumber
	m.Manufacturer = f.Manufacturer
	m.ModelType = f.ModelType
	m.SerialNumber = f.SerialNumber
	m.MachineType = f.MachineType
	m.ProductionGroup = f.ProductionGroup
	m.Tonnage = f.Tonnage
	m.Specification = f.Specification
}
