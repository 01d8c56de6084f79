package model

import "time"

// Machine represents one physical vending unit ("Automat"). Leitung and
// Mitarbeiter are free-text names matched against credential names; there
// is no foreign key between the two tables.
type Machine struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;size:64;not null" json:"code"`
	Stadt       string    `gorm:"size:128;index" json:"stadt"`
	Center      string    `gorm:"size:128" json:"center"`
	Leitung     string    `gorm:"size:128;index" json:"leitung"`
	Mitarbeiter string    `gorm:"size:128" json:"mitarbeiter"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName keeps the collection name of the original dataset.
func (Machine) TableName() string { return "automaten" }
