package store

import (
	"context"
	"fmt"

	"github.com/skinhelper/catalog/pkg/db/models"
	"gorm.io/gorm"
)

func firstByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func listAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var entities []T
	err := db.WithContext(ctx).Order("id ASC").Find(&entities).Error
	return entities, err
}

// deleteChecked removes one reference-table row inside a transaction,
// rejecting the delete while products still point at it.
func (s *SQLiteStore) deleteChecked(ctx context.Context, model any, id uint, label string, refModel any, refColumn string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(refModel).Where(refColumn+" = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%s %d is %w", label, id, ErrInUse)
		}

		result := tx.Delete(model, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Brand operations

func (s *SQLiteStore) CreateBrand(ctx context.Context, brand *models.Brand) error {
	return translate(s.db.WithContext(ctx).Create(brand).Error)
}

func (s *SQLiteStore) GetBrand(ctx context.Context, id uint) (*models.Brand, error) {
	return firstByID[models.Brand](ctx, s.db, id)
}

func (s *SQLiteStore) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return listAll[models.Brand](ctx, s.db)
}

func (s *SQLiteStore) UpdateBrand(ctx context.Context, brand *models.Brand) error {
	return translate(s.db.WithContext(ctx).Save(brand).Error)
}

func (s *SQLiteStore) DeleteBrand(ctx context.Context, id uint) error {
	return s.deleteChecked(ctx, &models.Brand{}, id, "brand", &models.Product{}, "brand_id")
}

// Category operations

func (s *SQLiteStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Create(category).Error)
}

func (s *SQLiteStore) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return firstByID[models.Category](ctx, s.db, id)
}

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return listAll[models.Category](ctx, s.db)
}

func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Save(category).Error)
}

func (s *SQLiteStore) DeleteCategory(ctx context.Context, id uint) error {
	return s.deleteChecked(ctx, &models.Category{}, id, "category", &models.Product{}, "category_id")
}

// SkinType operations

func (s *SQLiteStore) CreateSkinType(ctx context.Context, skinType *models.SkinType) error {
	return translate(s.db.WithContext(ctx).Create(skinType).Error)
}

func (s *SQLiteStore) GetSkinType(ctx context.Context, id uint) (*models.SkinType, error) {
	return firstByID[models.SkinType](ctx, s.db, id)
}

func (s *SQLiteStore) ListSkinTypes(ctx context.Context) ([]models.SkinType, error) {
	return listAll[models.SkinType](ctx, s.db)
}

func (s *SQLiteStore) UpdateSkinType(ctx context.Context, skinType *models.SkinType) error {
	return translate(s.db.WithContext(ctx).Save(skinType).Error)
}

func (s *SQLiteStore) DeleteSkinType(ctx context.Context, id uint) error {
	return s.deleteChecked(ctx, &models.SkinType{}, id, "skin type", &models.ProductSkinType{}, "skin_type_id")
}

// Concern operations

func (s *SQLiteStore) CreateConcern(ctx context.Context, concern *models.Concern) error {
	return translate(s.db.WithContext(ctx).Create(concern).Error)
}

func (s *SQLiteStore) GetConcern(ctx context.Context, id uint) (*models.Concern, error) {
	return firstByID[models.Concern](ctx, s.db, id)
}

func (s *SQLiteStore) ListConcerns(ctx context.Context) ([]models.Concern, error) {
	return listAll[models.Concern](ctx, s.db)
}

func (s *SQLiteStore) UpdateConcern(ctx context.Context, concern *models.Concern) error {
	return translate(s.db.WithContext(ctx).Save(concern).Error)
}

func (s *SQLiteStore) DeleteConcern(ctx context.Context, id uint) error {
	return s.deleteChecked(ctx, &models.Concern{}, id, "concern", &models.ProductConcern{}, "concern_id")
}

// Tag operations

func (s *SQLiteStore) CreateTag(ctx context.Context, tag *models.Tag) error {
	return translate(s.db.WithContext(ctx).Create(tag).Error)
}

func (s *SQLiteStore) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return firstByID[models.Tag](ctx, s.db, id)
}

func (s *SQLiteStore) ListTags(ctx context.Context) ([]models.Tag, error) {
	return listAll[models.Tag](ctx, s.db)
}

func (s *SQLiteStore) UpdateTag(ctx context.Context, tag *models.Tag) error {
	return translate(s.db.WithContext(ctx).Save(tag).Error)
}

func (s *SQLiteStore) DeleteTag(ctx context.Context, id uint) error {
	return s.deleteChecked(ctx, &models.Tag{}, id, "tag", &models.ProductTag{}, "tag_id")
}

// Ingredient operations

func (s *SQLiteStore) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	if ingredient.SafetyLevel == "" {
		ingredient.SafetyLevel = models.SafetySafe
	}
	if !ingredient.SafetyLevel.Valid() {
		return fmt.Errorf("invalid safety level %q", ingredient.SafetyLevel)
	}
	return translate(s.db.WithContext(ctx).Create(ingredient).Error)
}

func (s *SQLiteStore) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	return firstByID[models.Ingredient](ctx, s.db, id)
}

func (s *SQLiteStore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return listAll[models.Ingredient](ctx, s.db)
}

func (s *SQLiteStore) UpdateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	if !ingredient.SafetyLevel.Valid() {
		return fmt.Errorf("invalid safety level %q", ingredient.SafetyLevel)
	}
	return translate(s.db.WithContext(ctx).Save(ingredient).Error)
}

func (s *SQLiteStore) DeleteIngredient(ctx context.Context, id uint) error {
	return s.deleteChecked(ctx, &models.Ingredient{}, id, "ingredient", &models.ProductIngredient{}, "ingredient_id")
}
