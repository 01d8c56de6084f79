package model

import "time"

// CleaningRecord is one submitted cleaning protocol. The per-task fields of
// the form are not enumerated here; they travel as an opaque JSON document
// in Tasks exactly as submitted.
type CleaningRecord struct {
	ID               int64     `gorm:"primaryKey"`
	AutomatCode      string    `gorm:"size:64;index;not null"`
	Stadt            string    `gorm:"size:128"`
	Center           string    `gorm:"size:128"`
	Mitarbeiter      string    `gorm:"size:128"`
	Datum            time.Time `gorm:"index;not null"`
	Tasks            string    `gorm:"type:text"`
	Auffaelligkeiten string    `gorm:"type:text"`
	ErstelltAm       time.Time `gorm:"autoCreateTime"`
}

func (CleaningRecord) TableName() string { return "reinigungen" }

// MaintenanceRecord is one repair or maintenance entry.
type MaintenanceRecord struct {
	ID                int64     `gorm:"primaryKey"`
	AutomatCode       string    `gorm:"size:64;index;not null"`
	Stadt             string    `gorm:"size:128"`
	Center            string    `gorm:"size:128"`
	Datum             time.Time
	Name              string    `gorm:"size:128;not null"`
	Bezeichnung       string    `gorm:"size:256"`
	WartungselementID *int64    `gorm:"index"`
	Bemerkung         string    `gorm:"type:text"`
	PhotoURL          string    `gorm:"size:1024"`
	Quelle            string    `gorm:"size:64"`
	ErstelltAm        time.Time `gorm:"autoCreateTime"`
}

func (MaintenanceRecord) TableName() string { return "wartungsprotokolle" }

// ChecklistItem is one selectable maintenance element. Only items with
// Typ "Checkheft" are served to clients.
type ChecklistItem struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Bezeichnung string `gorm:"size:256;not null" json:"bezeichnung"`
	Typ         string `gorm:"size:64;index" json:"typ"`
}

func (ChecklistItem) TableName() string { return "wartungselemente" }

// WeeklyCheck is one completed weekly checklist for a machine. Tasks holds
// the normalized task map (done tasks only) as JSON.
type WeeklyCheck struct {
	ID          int64     `gorm:"primaryKey"`
	AutomatCode string    `gorm:"size:64;index;not null"`
	Mitarbeiter string    `gorm:"size:128;not null"`
	Woche       string    `gorm:"size:16;index;not null"`
	Status      string    `gorm:"size:32;not null"`
	Tasks       string    `gorm:"type:text;not null"`
	StartedAt   time.Time `gorm:"autoCreateTime"`
}

func (WeeklyCheck) TableName() string { return "wochen_wartungen" }
