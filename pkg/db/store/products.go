package store

import (
	"context"
	"math"

	"github.com/skinhelper/catalog/pkg/db/models"
	"gorm.io/gorm"
)

// ensureRef verifies an optional brand/category reference exists
func ensureRef(tx *gorm.DB, id *uint, model any, kind string) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := tx.Model(model).Where("id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &MissingRefError{Kind: kind, ID: *id}
	}
	return nil
}

// CreateProduct inserts the product and installs its association sets
// in one transaction, then re-reads it with brand and category
// attached.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product, relations ProductRelations) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureRef(tx, product.BrandID, &models.Brand{}, "brand"); err != nil {
			return err
		}
		if err := ensureRef(tx, product.CategoryID, &models.Category{}, "category"); err != nil {
			return err
		}
		if err := tx.Create(product).Error; err != nil {
			return translate(err)
		}
		return applyRelations(tx, product.ID, relations)
	})
	if err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, product.ID)
}

// GetProduct returns the short representation: the product with its
// brand and category attached.
func (s *SQLiteStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// GetProductDetail returns the product with brand, category and all
// four association collections materialized.
func (s *SQLiteStore) GetProductDetail(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Ingredients").
		Preload("SkinTypes").
		Preload("Concerns").
		Preload("Tags").
		First(&product, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// QueryProducts executes the composed listing query. Results are
// ordered by ascending product id and contain each matching product
// exactly once.
func (s *SQLiteStore) QueryProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	plan, err := buildProductQuery(filter)
	if err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Model(&models.Product{})
	for _, join := range plan.joins {
		tx = tx.Joins(join)
	}
	for _, cond := range plan.conds {
		tx = tx.Where(cond.expr, cond.args...)
	}
	if plan.distinct {
		tx = tx.Distinct("products.*")
	}

	tx = tx.Order("products.id ASC")
	switch {
	case plan.limit != nil:
		tx = tx.Limit(*plan.limit).Offset(plan.skip)
	case plan.skip > 0:
		// sqlite refuses OFFSET without LIMIT
		tx = tx.Limit(math.MaxInt32).Offset(plan.skip)
	}

	var products []models.Product
	err = tx.Preload("Brand").Preload("Category").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct applies a partial update plus association replacements
// in one transaction.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, id uint, patch ProductPatch, relations ProductRelations) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return translate(err)
		}

		if patch.BrandID != nil {
			if err := ensureRef(tx, patch.BrandID, &models.Brand{}, "brand"); err != nil {
				return err
			}
			product.BrandID = patch.BrandID
		}
		if patch.CategoryID != nil {
			if err := ensureRef(tx, patch.CategoryID, &models.Category{}, "category"); err != nil {
				return err
			}
			product.CategoryID = patch.CategoryID
		}
		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Description != nil {
			product.Description = patch.Description
		}
		if patch.HowToUse != nil {
			product.HowToUse = patch.HowToUse
		}
		if patch.ImageURL != nil {
			product.ImageURL = patch.ImageURL
		}
		if patch.VolumeML != nil {
			product.VolumeML = patch.VolumeML
		}

		if err := tx.Save(&product).Error; err != nil {
			return translate(err)
		}
		return applyRelations(tx, product.ID, relations)
	})
	if err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct removes the product together with its junction rows
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return translate(err)
		}

		junctions := []any{
			&models.ProductIngredient{},
			&models.ProductSkinType{},
			&models.ProductConcern{},
			&models.ProductTag{},
		}
		for _, junction := range junctions {
			if err := tx.Where("product_id = ?", id).Delete(junction).Error; err != nil {
				return err
			}
		}
		return translate(tx.Delete(&models.Product{}, id).Error)
	})
}
