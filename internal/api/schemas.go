package api

import (
	"github.com/skinhelper/catalog/pkg/db/models"
	"github.com/skinhelper/catalog/pkg/db/store"
)

// Wire schemas. Field names follow the API's capitalized-word
// convention ("Id", "BrandId", ...) rather than Go-internal naming.

// NamedSchema is the wire shape shared by the five name-only
// reference entities.
type NamedSchema struct {
	ID   uint   `json:"Id"`
	Name string `json:"Name"`
}

type NamedCreateRequest struct {
	Name string `json:"Name" binding:"required"`
}

type NamedUpdateRequest struct {
	Name string `json:"Name" binding:"required"`
}

type IngredientSchema struct {
	ID               uint    `json:"Id"`
	Name             string  `json:"Name"`
	Purpose          *string `json:"Purpose"`
	SafetyLevel      string  `json:"SafetyLevel"`
	MaxConcentration *int    `json:"MaxConcentration"`
	Carcinogenicity  *int    `json:"Carcinogenicity"`
	Allergenicity    *int    `json:"Allergenicity"`
}

type IngredientCreateRequest struct {
	Name             string  `json:"Name" binding:"required"`
	Purpose          *string `json:"Purpose"`
	SafetyLevel      *string `json:"SafetyLevel"`
	MaxConcentration *int    `json:"MaxConcentration"`
	Carcinogenicity  *int    `json:"Carcinogenicity"`
	Allergenicity    *int    `json:"Allergenicity"`
}

type IngredientUpdateRequest struct {
	Name             *string `json:"Name"`
	Purpose          *string `json:"Purpose"`
	SafetyLevel      *string `json:"SafetyLevel"`
	MaxConcentration *int    `json:"MaxConcentration"`
	Carcinogenicity  *int    `json:"Carcinogenicity"`
	Allergenicity    *int    `json:"Allergenicity"`
}

// ProductSchema is the short product representation: scalar fields
// plus brand and category.
type ProductSchema struct {
	ID          uint         `json:"Id"`
	Name        string       `json:"Name"`
	Description *string      `json:"Description"`
	HowToUse    *string      `json:"HowToUse"`
	ImageURL    *string      `json:"ImageUrl"`
	VolumeML    *int         `json:"VolumeMl"`
	BrandID     *uint        `json:"BrandId"`
	CategoryID  *uint        `json:"CategoryId"`
	Brand       *NamedSchema `json:"Brand"`
	Category    *NamedSchema `json:"Category"`
}

// ProductDetailSchema adds the four association collections
type ProductDetailSchema struct {
	ProductSchema
	Ingredients []IngredientSchema `json:"Ingredients"`
	SkinTypes   []NamedSchema      `json:"SuitableForSkinTypes"`
	Concerns    []NamedSchema      `json:"TargetsConcerns"`
	Tags        []NamedSchema      `json:"Tags"`
}

type ProductCreateRequest struct {
	Name        string  `json:"Name" binding:"required"`
	Description *string `json:"Description"`
	HowToUse    *string `json:"HowToUse"`
	ImageURL    *string `json:"ImageUrl"`
	VolumeML    *int    `json:"VolumeMl"`
	BrandID     *uint   `json:"BrandId"`
	CategoryID  *uint   `json:"CategoryId"`

	IngredientIDs *[]uint `json:"IngredientIds"`
	SkinTypeIDs   *[]uint `json:"SkinTypeIds"`
	ConcernIDs    *[]uint `json:"ConcernIds"`
	TagIDs        *[]uint `json:"TagIds"`
}

// ProductUpdateRequest is a partial update: absent fields leave the
// product unchanged. For the id lists, an absent field keeps the
// current association set while an empty list clears it.
type ProductUpdateRequest struct {
	Name        *string `json:"Name"`
	Description *string `json:"Description"`
	HowToUse    *string `json:"HowToUse"`
	ImageURL    *string `json:"ImageUrl"`
	VolumeML    *int    `json:"VolumeMl"`
	BrandID     *uint   `json:"BrandId"`
	CategoryID  *uint   `json:"CategoryId"`

	IngredientIDs *[]uint `json:"IngredientIds"`
	SkinTypeIDs   *[]uint `json:"SkinTypeIds"`
	ConcernIDs    *[]uint `json:"ConcernIds"`
	TagIDs        *[]uint `json:"TagIds"`
}

func brandSchema(brand *models.Brand) *NamedSchema {
	if brand == nil {
		return nil
	}
	return &NamedSchema{ID: brand.ID, Name: brand.Name}
}

func categorySchema(category *models.Category) *NamedSchema {
	if category == nil {
		return nil
	}
	return &NamedSchema{ID: category.ID, Name: category.Name}
}

func ingredientSchema(ingredient *models.Ingredient) IngredientSchema {
	return IngredientSchema{
		ID:               ingredient.ID,
		Name:             ingredient.Name,
		Purpose:          ingredient.Purpose,
		SafetyLevel:      string(ingredient.SafetyLevel),
		MaxConcentration: ingredient.MaxConcentration,
		Carcinogenicity:  ingredient.Carcinogenicity,
		Allergenicity:    ingredient.Allergenicity,
	}
}

func productSchema(product *models.Product) ProductSchema {
	return ProductSchema{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		HowToUse:    product.HowToUse,
		ImageURL:    product.ImageURL,
		VolumeML:    product.VolumeML,
		BrandID:     product.BrandID,
		CategoryID:  product.CategoryID,
		Brand:       brandSchema(product.Brand),
		Category:    categorySchema(product.Category),
	}
}

func productDetailSchema(product *models.Product) ProductDetailSchema {
	detail := ProductDetailSchema{
		ProductSchema: productSchema(product),
		Ingredients:   make([]IngredientSchema, 0, len(product.Ingredients)),
		SkinTypes:     make([]NamedSchema, 0, len(product.SkinTypes)),
		Concerns:      make([]NamedSchema, 0, len(product.Concerns)),
		Tags:          make([]NamedSchema, 0, len(product.Tags)),
	}
	for i := range product.Ingredients {
		detail.Ingredients = append(detail.Ingredients, ingredientSchema(&product.Ingredients[i]))
	}
	for _, st := range product.SkinTypes {
		detail.SkinTypes = append(detail.SkinTypes, NamedSchema{ID: st.ID, Name: st.Name})
	}
	for _, concern := range product.Concerns {
		detail.Concerns = append(detail.Concerns, NamedSchema{ID: concern.ID, Name: concern.Name})
	}
	for _, tag := range product.Tags {
		detail.Tags = append(detail.Tags, NamedSchema{ID: tag.ID, Name: tag.Name})
	}
	return detail
}

func (r *ProductCreateRequest) relations() store.ProductRelations {
	return store.ProductRelations{
		IngredientIDs: r.IngredientIDs,
		SkinTypeIDs:   r.SkinTypeIDs,
		ConcernIDs:    r.ConcernIDs,
		TagIDs:        r.TagIDs,
	}
}

func (r *ProductUpdateRequest) relations() store.ProductRelations {
	return store.ProductRelations{
		IngredientIDs: r.IngredientIDs,
		SkinTypeIDs:   r.SkinTypeIDs,
		ConcernIDs:    r.ConcernIDs,
		TagIDs:        r.TagIDs,
	}
}
