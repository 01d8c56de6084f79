package model

import "time"

// Credential represents one valid login PIN. Rows are administered
// out-of-band; the application never writes to this table.
type Credential struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PIN       string    `gorm:"column:pin;size:32;index;not null" json:"pin"`
	Name      string    `gorm:"size:128" json:"name"`
	Role      string    `gorm:"size:32" json:"role"`
	Stadt     string    `gorm:"size:128" json:"stadt"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName keeps the collection name of the original dataset.
func (Credential) TableName() string { return "pins" }
