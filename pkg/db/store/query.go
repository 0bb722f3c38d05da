package store

import "strings"

// ProductFilter holds the optional, independently combinable criteria
// for a product listing. Zero values mean "not supplied".
type ProductFilter struct {
	// Unified substring search across product, brand, category and
	// ingredient names.
	Search string

	// Legacy substring filters, mutually exclusive with Search.
	Name  string
	Brand string

	// Category filter: by id or by name substring, never both.
	CategoryID *uint
	Category   string

	// Many-to-many filters: a product must have at least one matching
	// association per supplied kind.
	SkinTypeIDs   []uint
	ConcernIDs    []uint
	TagIDs        []uint
	IngredientIDs []uint

	// Pagination
	Skip  int
	Limit *int
}

type queryCond struct {
	expr string
	args []any
}

// productQueryPlan is the executable form of a ProductFilter: the
// ordered joins and predicates to apply to the product relation, plus
// whether join fan-out requires de-duplication by product id.
type productQueryPlan struct {
	joins    []string
	conds    []queryCond
	distinct bool
	skip     int
	limit    *int
}

// buildProductQuery validates the filter combination and translates it
// into a query plan. Pure; it never touches the database, so invalid
// combinations are rejected before any storage access.
func buildProductQuery(f ProductFilter) (productQueryPlan, error) {
	var plan productQueryPlan

	if f.Search != "" && (f.Name != "" || f.Brand != "") {
		return plan, &FilterError{Detail: "cannot combine legacy 'name'/'brand' parameters with unified 'search' parameter"}
	}
	if f.CategoryID != nil && f.Category != "" {
		return plan, &FilterError{Detail: "cannot specify both 'category_id' and 'category', use one or the other"}
	}
	if f.Skip < 0 {
		return plan, &FilterError{Detail: "'skip' must be non-negative"}
	}
	if f.Limit != nil && *f.Limit < 0 {
		return plan, &FilterError{Detail: "'limit' must be non-negative"}
	}

	categoriesJoined := false

	if f.Search != "" {
		// The ingredient joins are aliased so an ingredient id filter
		// below can join the same junction independently.
		plan.joins = append(plan.joins,
			"LEFT JOIN brands ON brands.id = products.brand_id",
			"LEFT JOIN categories ON categories.id = products.category_id",
			"LEFT JOIN product_ingredients AS pi_search ON pi_search.product_id = products.id",
			"LEFT JOIN ingredients AS ing_search ON ing_search.id = pi_search.ingredient_id",
		)
		pattern := likePattern(f.Search)
		plan.conds = append(plan.conds, queryCond{
			expr: "(LOWER(products.name) LIKE ? OR LOWER(brands.name) LIKE ? OR LOWER(categories.name) LIKE ? OR LOWER(ing_search.name) LIKE ?)",
			args: []any{pattern, pattern, pattern, pattern},
		})
		// The ingredient join fans one product out into one row per
		// ingredient, so the result must collapse by product id.
		plan.distinct = true
		categoriesJoined = true
	} else {
		if f.Name != "" {
			plan.conds = append(plan.conds, queryCond{
				expr: "LOWER(products.name) LIKE ?",
				args: []any{likePattern(f.Name)},
			})
		}
		if f.Brand != "" {
			plan.joins = append(plan.joins, "JOIN brands ON brands.id = products.brand_id")
			plan.conds = append(plan.conds, queryCond{
				expr: "LOWER(brands.name) LIKE ?",
				args: []any{likePattern(f.Brand)},
			})
		}
	}

	switch {
	case f.CategoryID != nil:
		plan.conds = append(plan.conds, queryCond{
			expr: "products.category_id = ?",
			args: []any{*f.CategoryID},
		})
	case f.Category != "":
		if !categoriesJoined {
			plan.joins = append(plan.joins, "JOIN categories ON categories.id = products.category_id")
		}
		plan.conds = append(plan.conds, queryCond{
			expr: "LOWER(categories.name) LIKE ?",
			args: []any{likePattern(f.Category)},
		})
	}

	m2m := []struct {
		ids    []uint
		join   string
		column string
	}{
		{f.SkinTypeIDs, "JOIN product_skin_types ON product_skin_types.product_id = products.id", "product_skin_types.skin_type_id"},
		{f.ConcernIDs, "JOIN product_concerns ON product_concerns.product_id = products.id", "product_concerns.concern_id"},
		{f.TagIDs, "JOIN product_tags ON product_tags.product_id = products.id", "product_tags.tag_id"},
		{f.IngredientIDs, "JOIN product_ingredients ON product_ingredients.product_id = products.id", "product_ingredients.ingredient_id"},
	}
	for _, m := range m2m {
		// Empty means "no filter of this kind", not "match nothing"
		if len(m.ids) == 0 {
			continue
		}
		plan.joins = append(plan.joins, m.join)
		plan.conds = append(plan.conds, queryCond{expr: m.column + " IN ?", args: []any{m.ids}})
		plan.distinct = true
	}

	plan.skip = f.Skip
	plan.limit = f.Limit
	return plan, nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
