package models

import "time"

// Concern represents a skin concern a product targets (acne, dryness, ...)
type Concern struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Products []Product `gorm:"many2many:product_concerns"`
}
