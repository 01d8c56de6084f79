package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bordbuch-backend/internal/model"
)

// ChecklistTyp is the item type served to the weekly-checklist form.
const ChecklistTyp = "Checkheft"

// Store defines the interface for all database operations.
type Store interface {
	// FindCredentialByPIN returns the first credential matching the pin in
	// primary-key order, or nil when no row matches. PINs are compared as
	// strings even when they look numeric.
	FindCredentialByPIN(ctx context.Context, pin string) (*model.Credential, error)

	// ListMachines returns the full machine directory in primary-key order.
	ListMachines(ctx context.Context) ([]model.Machine, error)
	// ListMachinesBySite is the pushed-down equality variant on stadt.
	ListMachinesBySite(ctx context.Context, stadt string) ([]model.Machine, error)
	// ListMachinesByLeitung is the pushed-down equality variant on leitung.
	ListMachinesByLeitung(ctx context.Context, name string) ([]model.Machine, error)

	CreateCleaning(ctx context.Context, rec *model.CleaningRecord) error
	// LatestCleaning returns the most recent cleaning record for a machine
	// by Datum, or nil when the machine has none.
	LatestCleaning(ctx context.Context, automatCode string) (*model.CleaningRecord, error)

	// ListChecklistItems returns all items with Typ "Checkheft".
	ListChecklistItems(ctx context.Context) ([]model.ChecklistItem, error)
	GetChecklistItem(ctx context.Context, id int64) (*model.ChecklistItem, error)

	CreateMaintenance(ctx context.Context, rec *model.MaintenanceRecord) error
	CreateWeeklyCheck(ctx context.Context, rec *model.WeeklyCheck) error

	// DB exposes the underlying connection for the subscription handlers.
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB { return s.db }

func (s *gormStore) FindCredentialByPIN(ctx context.Context, pin string) (*model.Credential, error) {
	var cred model.Credential
	err := s.db.WithContext(ctx).
		Where("pin = ?", pin).
		Order("id").
		First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}
	return &cred, nil
}

func (s *gormStore) ListMachines(ctx context.Context) ([]model.Machine, error) {
	var machines []model.Machine
	if err := s.db.WithContext(ctx).Order("id").Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	return machines, nil
}

func (s *gormStore) ListMachinesBySite(ctx context.Context, stadt string) ([]model.Machine, error) {
	var machines []model.Machine
	if err := s.db.WithContext(ctx).Where("stadt = ?", stadt).Order("id").Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("failed to list machines for stadt %q: %w", stadt, err)
	}
	return machines, nil
}

func (s *gormStore) ListMachinesByLeitung(ctx context.Context, name string) ([]model.Machine, error) {
	var machines []model.Machine
	if err := s.db.WithContext(ctx).Where("leitung = ?", name).Order("id").Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("failed to list machines for leitung %q: %w", name, err)
	}
	return machines, nil
}

func (s *gormStore) CreateCleaning(ctx context.Context, rec *model.CleaningRecord) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create cleaning record for machine %s: %w", rec.AutomatCode, err)
	}
	return nil
}

func (s *gormStore) LatestCleaning(ctx context.Context, automatCode string) (*model.CleaningRecord, error) {
	var rec model.CleaningRecord
	err := s.db.WithContext(ctx).
		Where("automat_code = ?", automatCode).
		Order("datum DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest cleaning for machine %s: %w", automatCode, err)
	}
	return &rec, nil
}

func (s *gormStore) ListChecklistItems(ctx context.Context) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	if err := s.db.WithContext(ctx).Where("typ = ?", ChecklistTyp).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return items, nil
}

func (s *gormStore) GetChecklistItem(ctx context.Context, id int64) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist item %d: %w", id, err)
	}
	return &item, nil
}

func (s *gormStore) CreateMaintenance(ctx context.Context, rec *model.MaintenanceRecord) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record for machine %s: %w", rec.AutomatCode, err)
	}
	return nil
}

func (s *gormStore) CreateWeeklyCheck(ctx context.Context, rec *model.WeeklyCheck) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create weekly check for machine %s: %w", rec.AutomatCode, err)
	}
	return nil
}
