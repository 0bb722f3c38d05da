package store

import (
	"sort"

	"github.com/skinhelper/catalog/pkg/db/models"
	"gorm.io/gorm"
)

// relationKind describes one of the four product association kinds:
// the entity table candidate ids are validated against, the junction
// model holding the pairs, and a constructor for new junction rows.
type relationKind struct {
	label    string
	entity   any
	junction any
	rows     func(productID uint, ids []uint) any
}

var (
	relIngredients = relationKind{
		label:    "ingredients",
		entity:   &models.Ingredient{},
		junction: &models.ProductIngredient{},
		rows: func(productID uint, ids []uint) any {
			rows := make([]models.ProductIngredient, len(ids))
			for i, id := range ids {
				rows[i] = models.ProductIngredient{ProductID: productID, IngredientID: id}
			}
			return &rows
		},
	}
	relSkinTypes = relationKind{
		label:    "skin types",
		entity:   &models.SkinType{},
		junction: &models.ProductSkinType{},
		rows: func(productID uint, ids []uint) any {
			rows := make([]models.ProductSkinType, len(ids))
			for i, id := range ids {
				rows[i] = models.ProductSkinType{ProductID: productID, SkinTypeID: id}
			}
			return &rows
		},
	}
	relConcerns = relationKind{
		label:    "concerns",
		entity:   &models.Concern{},
		junction: &models.ProductConcern{},
		rows: func(productID uint, ids []uint) any {
			rows := make([]models.ProductConcern, len(ids))
			for i, id := range ids {
				rows[i] = models.ProductConcern{ProductID: productID, ConcernID: id}
			}
			return &rows
		},
	}
	relTags = relationKind{
		label:    "tags",
		entity:   &models.Tag{},
		junction: &models.ProductTag{},
		rows: func(productID uint, ids []uint) any {
			rows := make([]models.ProductTag, len(ids))
			for i, id := range ids {
				rows[i] = models.ProductTag{ProductID: productID, TagID: id}
			}
			return &rows
		},
	}
)

// applyRelations replaces the product's association sets inside the
// caller's transaction. A nil id list leaves that kind untouched, an
// empty list clears it, a populated list replaces it. Any failure
// aborts the enclosing transaction so no partial replacement persists.
func applyRelations(tx *gorm.DB, productID uint, relations ProductRelations) error {
	kinds := []struct {
		ids  *[]uint
		kind relationKind
	}{
		{relations.IngredientIDs, relIngredients},
		{relations.SkinTypeIDs, relSkinTypes},
		{relations.ConcernIDs, relConcerns},
		{relations.TagIDs, relTags},
	}

	for _, k := range kinds {
		if k.ids == nil {
			continue
		}
		if err := replaceRelation(tx, productID, k.kind, *k.ids); err != nil {
			return err
		}
	}
	return nil
}

// replaceRelation validates the candidate ids and installs them as the
// product's full association set for one kind. Set-replace, not
// set-union: old pairs for the kind are discarded.
func replaceRelation(tx *gorm.DB, productID uint, kind relationKind, ids []uint) error {
	unique := dedupe(ids)

	if len(unique) > 0 {
		var found []uint
		if err := tx.Model(kind.entity).Where("id IN ?", unique).Pluck("id", &found).Error; err != nil {
			return err
		}
		if len(found) != len(unique) {
			return newMissingIDsError(kind.label, difference(unique, found))
		}
	}

	if err := tx.Where("product_id = ?", productID).Delete(kind.junction).Error; err != nil {
		return err
	}
	if len(unique) == 0 {
		return nil
	}
	return tx.Create(kind.rows(productID, unique)).Error
}

// dedupe returns the unique ids in ascending order
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return unique
}

// difference returns the ids present in want but absent from have
func difference(want, have []uint) []uint {
	got := make(map[uint]struct{}, len(have))
	for _, id := range have {
		got[id] = struct{}{}
	}
	var missing []uint
	for _, id := range want {
		if _, ok := got[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
