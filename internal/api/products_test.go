package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	brand      NamedSchema
	category   NamedSchema
	ingredient IngredientSchema
	skinType   NamedSchema
	concern    NamedSchema
	tag        NamedSchema
}

func seedCatalog(t *testing.T, router *gin.Engine) catalogFixture {
	t.Helper()

	var fixture catalogFixture

	recorder := perform(t, router, http.MethodPost, "/brands/", NamedCreateRequest{Name: "CeraVe"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	decodeBody(t, recorder, &fixture.brand)

	recorder = perform(t, router, http.MethodPost, "/categories/", NamedCreateRequest{Name: "Cleanser"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	decodeBody(t, recorder, &fixture.category)

	recorder = perform(t, router, http.MethodPost, "/ingredients/", IngredientCreateRequest{Name: "Ceramide NP"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	decodeBody(t, recorder, &fixture.ingredient)

	recorder = perform(t, router, http.MethodPost, "/skin-types/", NamedCreateRequest{Name: "dry"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	decodeBody(t, recorder, &fixture.skinType)

	recorder = perform(t, router, http.MethodPost, "/concerns/", NamedCreateRequest{Name: "dryness"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	decodeBody(t, recorder, &fixture.concern)

	recorder = perform(t, router, http.MethodPost, "/tags/", NamedCreateRequest{Name: "fragrance-free"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	decodeBody(t, recorder, &fixture.tag)

	return fixture
}

func TestProductCreateAndDetail(t *testing.T) {
	router, _ := newTestRouter(t)
	fixture := seedCatalog(t, router)

	volume := 236
	recorder := perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{
		Name:          "Hydrating Cleanser",
		VolumeML:      &volume,
		BrandID:       &fixture.brand.ID,
		CategoryID:    &fixture.category.ID,
		IngredientIDs: &[]uint{fixture.ingredient.ID},
		SkinTypeIDs:   &[]uint{fixture.skinType.ID},
		ConcernIDs:    &[]uint{fixture.concern.ID},
		TagIDs:        &[]uint{fixture.tag.ID},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created ProductSchema
	decodeBody(t, recorder, &created)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Brand)
	assert.Equal(t, "CeraVe", created.Brand.Name)

	recorder = perform(t, router, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// the detail payload uses the relationship aliases on the wire
	body := recorder.Body.String()
	assert.Contains(t, body, `"SuitableForSkinTypes"`)
	assert.Contains(t, body, `"TargetsConcerns"`)
	assert.Contains(t, body, `"BrandId"`)

	var detail ProductDetailSchema
	decodeBody(t, recorder, &detail)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "Ceramide NP", detail.Ingredients[0].Name)
	require.Len(t, detail.SkinTypes, 1)
	require.Len(t, detail.Concerns, 1)
	require.Len(t, detail.Tags, 1)
}

func TestProductCreateWithUnknownIngredient(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{
		Name:          "Serum",
		IngredientIDs: &[]uint{999},
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body errorResponse
	decodeBody(t, recorder, &body)
	assert.Equal(t, "some ingredients not found: [999]", body.Detail)
}

func TestProductCreateWithUnknownBrand(t *testing.T) {
	router, _ := newTestRouter(t)

	brandID := uint(77)
	recorder := perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{
		Name:    "Serum",
		BrandID: &brandID,
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body errorResponse
	decodeBody(t, recorder, &body)
	assert.Equal(t, "brand 77 not found", body.Detail)
}

func TestProductUpdateRelationTriState(t *testing.T) {
	router, _ := newTestRouter(t)
	fixture := seedCatalog(t, router)

	recorder := perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{
		Name:   "Cleanser",
		TagIDs: &[]uint{fixture.tag.ID},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var created ProductSchema
	decodeBody(t, recorder, &created)
	path := fmt.Sprintf("/products/%d", created.ID)

	// a body without TagIds leaves the association set alone
	name := "Renamed Cleanser"
	recorder = perform(t, router, http.MethodPut, path, ProductUpdateRequest{Name: &name})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = perform(t, router, http.MethodGet, path, nil)
	var detail ProductDetailSchema
	decodeBody(t, recorder, &detail)
	assert.Equal(t, "Renamed Cleanser", detail.Name)
	require.Len(t, detail.Tags, 1)

	// an explicit empty list clears it
	recorder = perform(t, router, http.MethodPut, path, ProductUpdateRequest{TagIDs: &[]uint{}})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = perform(t, router, http.MethodGet, path, nil)
	decodeBody(t, recorder, &detail)
	assert.Empty(t, detail.Tags)
}

func TestProductListFilters(t *testing.T) {
	router, _ := newTestRouter(t)
	fixture := seedCatalog(t, router)

	recorder := perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{
		Name:        "Hydrating Cleanser",
		BrandID:     &fixture.brand.ID,
		SkinTypeIDs: &[]uint{fixture.skinType.ID},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var seeded ProductSchema
	decodeBody(t, recorder, &seeded)

	recorder = perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{Name: "Sunscreen"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// free-text search matches the brand name
	recorder = perform(t, router, http.MethodGet, "/products/all?search=cerave", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var listed []ProductSchema
	decodeBody(t, recorder, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, seeded.ID, listed[0].ID)

	// skin type filter accepts comma-separated ids
	recorder = perform(t, router, http.MethodGet, fmt.Sprintf("/products/all?skin_type_ids=%d,999", fixture.skinType.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeBody(t, recorder, &listed)
	require.Len(t, listed, 1)

	// unfiltered returns everything in id order
	recorder = perform(t, router, http.MethodGet, "/products/all", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeBody(t, recorder, &listed)
	require.Len(t, listed, 2)
	assert.Less(t, listed[0].ID, listed[1].ID)
}

func TestProductListRejectsConflictingParams(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodGet, "/products/all?search=x&name=y", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = perform(t, router, http.MethodGet, "/products/all?category_id=1&category=serum", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = perform(t, router, http.MethodGet, "/products/all?skip=-1", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = perform(t, router, http.MethodGet, "/products/all?tag_ids=abc", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestProductPagination(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 1; i <= 5; i++ {
		recorder := perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{Name: fmt.Sprintf("Product %d", i)})
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := perform(t, router, http.MethodGet, "/products/all?skip=1&limit=2", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed []ProductSchema
	decodeBody(t, recorder, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, uint(2), listed[0].ID)
	assert.Equal(t, uint(3), listed[1].ID)
}

func TestProductDelete(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{Name: "Toner"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var created ProductSchema
	decodeBody(t, recorder, &created)
	path := fmt.Sprintf("/products/%d", created.ID)

	recorder = perform(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = perform(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body errorResponse
	decodeBody(t, recorder, &body)
	assert.Equal(t, "product not found", body.Detail)
}

func TestProductInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodGet, "/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
