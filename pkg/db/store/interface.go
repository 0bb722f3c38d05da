package store

import (
	"context"

	"github.com/skinhelper/catalog/pkg/db/models"
)

// CatalogStore defines the interface for database operations
type CatalogStore interface {
	// Lifecycle
	Connect(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Health(ctx context.Context) error

	// Brand operations
	CreateBrand(ctx context.Context, brand *models.Brand) error
	GetBrand(ctx context.Context, id uint) (*models.Brand, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	UpdateBrand(ctx context.Context, brand *models.Brand) error
	DeleteBrand(ctx context.Context, id uint) error

	// Category operations
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	// SkinType operations
	CreateSkinType(ctx context.Context, skinType *models.SkinType) error
	GetSkinType(ctx context.Context, id uint) (*models.SkinType, error)
	ListSkinTypes(ctx context.Context) ([]models.SkinType, error)
	UpdateSkinType(ctx context.Context, skinType *models.SkinType) error
	DeleteSkinType(ctx context.Context, id uint) error

	// Concern operations
	CreateConcern(ctx context.Context, concern *models.Concern) error
	GetConcern(ctx context.Context, id uint) (*models.Concern, error)
	ListConcerns(ctx context.Context) ([]models.Concern, error)
	UpdateConcern(ctx context.Context, concern *models.Concern) error
	DeleteConcern(ctx context.Context, id uint) error

	// Tag operations
	CreateTag(ctx context.Context, tag *models.Tag) error
	GetTag(ctx context.Context, id uint) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	UpdateTag(ctx context.Context, tag *models.Tag) error
	DeleteTag(ctx context.Context, id uint) error

	// Ingredient operations
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error
	GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	UpdateIngredient(ctx context.Context, ingredient *models.Ingredient) error
	DeleteIngredient(ctx context.Context, id uint) error

	// Product operations
	CreateProduct(ctx context.Context, product *models.Product, relations ProductRelations) (*models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	GetProductDetail(ctx context.Context, id uint) (*models.Product, error)
	QueryProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id uint, patch ProductPatch, relations ProductRelations) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// ProductRelations carries the desired association sets for one
// product write. Each field is tri-state: nil leaves the set
// unchanged, an empty slice clears it, a populated slice replaces it.
type ProductRelations struct {
	IngredientIDs *[]uint
	SkinTypeIDs   *[]uint
	ConcernIDs    *[]uint
	TagIDs        *[]uint
}

// ProductPatch carries a partial product update; nil fields are left
// unchanged.
type ProductPatch struct {
	Name        *string
	Description *string
	HowToUse    *string
	ImageURL    *string
	VolumeML    *int
	BrandID     *uint
	CategoryID  *uint
}
