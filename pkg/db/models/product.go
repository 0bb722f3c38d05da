package models

import "time"

// Product is the central catalog entity. Brand and category are
// optional weak references; the four collections are many-to-many
// through explicit join tables (see junctions.go).
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:text;not null"`
	Description *string `gorm:"type:text"`
	HowToUse    *string `gorm:"type:text"`
	ImageURL    *string `gorm:"type:text"`
	VolumeML    *int

	BrandID    *uint `gorm:"index"`
	CategoryID *uint `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Brand       *Brand
	Category    *Category
	Ingredients []Ingredient `gorm:"many2many:product_ingredients"`
	SkinTypes   []SkinType   `gorm:"many2many:product_skin_types"`
	Concerns    []Concern    `gorm:"many2many:product_concerns"`
	Tags        []Tag        `gorm:"many2many:product_tags"`
}
