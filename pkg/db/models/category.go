package models

import "time"

// Category represents a product category (cleanser, serum, ...)
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID"`
}
