package models

import "time"

// Brand represents a cosmetic brand
type Brand struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Products []Product `gorm:"foreignKey:BrandID"`
}
