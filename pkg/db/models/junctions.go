package models

// Join tables are modeled explicitly so association replacement can
// delete and insert pairs as plain rows. The composite primary keys
// forbid duplicate pairs at the storage level.

// ProductIngredient links a product to one of its ingredients
type ProductIngredient struct {
	ProductID    uint `gorm:"primaryKey"`
	IngredientID uint `gorm:"primaryKey"`
}

// ProductSkinType links a product to a suitable skin type
type ProductSkinType struct {
	ProductID  uint `gorm:"primaryKey"`
	SkinTypeID uint `gorm:"primaryKey"`
}

// ProductConcern links a product to a concern it targets
type ProductConcern struct {
	ProductID uint `gorm:"primaryKey"`
	ConcernID uint `gorm:"primaryKey"`
}

// ProductTag links a product to a tag
type ProductTag struct {
	ProductID uint `gorm:"primaryKey"`
	TagID     uint `gorm:"primaryKey"`
}
