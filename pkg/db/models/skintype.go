package models

import "time"

// SkinType represents a skin type a product is suitable for
type SkinType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Products []Product `gorm:"many2many:product_skin_types"`
}
