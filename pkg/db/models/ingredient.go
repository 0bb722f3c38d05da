package models

import "time"

// SafetyLevel classifies how safe an ingredient is considered
type SafetyLevel string

const (
	SafetySafe    SafetyLevel = "safe"
	SafetyCaution SafetyLevel = "caution"
	SafetyDanger  SafetyLevel = "danger"
	SafetyUnknown SafetyLevel = "unknown"
)

// Valid reports whether the value is one of the closed safety set
func (sl SafetyLevel) Valid() bool {
	switch sl {
	case SafetySafe, SafetyCaution, SafetyDanger, SafetyUnknown:
		return true
	}
	return false
}

// Ingredient represents a cosmetic ingredient with its safety profile
type Ingredient struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"type:text;not null;uniqueIndex"`
	Purpose *string `gorm:"type:text"`

	SafetyLevel      SafetyLevel `gorm:"type:text;not null;default:safe"`
	MaxConcentration *int
	Carcinogenicity  *int
	Allergenicity    *int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Products []Product `gorm:"many2many:product_ingredients"`
}
