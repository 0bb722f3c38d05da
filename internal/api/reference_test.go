package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	// create
	recorder := perform(t, router, http.MethodPost, "/brands/", NamedCreateRequest{Name: "CeraVe"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created NamedSchema
	decodeBody(t, recorder, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "CeraVe", created.Name)
	assert.Contains(t, recorder.Body.String(), `"Id"`)

	// read back
	recorder = perform(t, router, http.MethodGet, fmt.Sprintf("/brands/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// rename
	recorder = perform(t, router, http.MethodPut, fmt.Sprintf("/brands/%d", created.ID), NamedUpdateRequest{Name: "CeraVe Skincare"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var renamed NamedSchema
	decodeBody(t, recorder, &renamed)
	assert.Equal(t, "CeraVe Skincare", renamed.Name)

	// list
	recorder = perform(t, router, http.MethodGet, "/brands/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var listed []NamedSchema
	decodeBody(t, recorder, &listed)
	require.Len(t, listed, 1)

	// delete and verify gone
	recorder = perform(t, router, http.MethodDelete, fmt.Sprintf("/brands/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = perform(t, router, http.MethodGet, fmt.Sprintf("/brands/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBrandDuplicateNameRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodPost, "/brands/", NamedCreateRequest{Name: "CeraVe"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = perform(t, router, http.MethodPost, "/brands/", NamedCreateRequest{Name: "CeraVe"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body errorResponse
	decodeBody(t, recorder, &body)
	assert.Contains(t, body.Detail, "brand")
	assert.Contains(t, body.Detail, "already exists")
}

func TestBrandCreateRequiresName(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodPost, "/brands/", map[string]any{})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBrandNotFoundDetail(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodGet, "/brands/42", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body errorResponse
	decodeBody(t, recorder, &body)
	assert.Equal(t, "brand not found", body.Detail)
}

func TestBrandInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodGet, "/brands/abc", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteReferencedTagRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodPost, "/tags/", NamedCreateRequest{Name: "vegan"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var tag NamedSchema
	decodeBody(t, recorder, &tag)

	recorder = perform(t, router, http.MethodPost, "/products/", ProductCreateRequest{
		Name:   "Cleanser",
		TagIDs: &[]uint{tag.ID},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = perform(t, router, http.MethodDelete, fmt.Sprintf("/tags/%d", tag.ID), nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body errorResponse
	decodeBody(t, recorder, &body)
	assert.Contains(t, body.Detail, "referenced by products")
}

func TestAllReferenceRoutesRegistered(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/brands/", "/categories/", "/skin-types/", "/concerns/", "/tags/"} {
		recorder := perform(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}
}

func TestIngredientSafetyLevelValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	// defaults to safe when omitted
	recorder := perform(t, router, http.MethodPost, "/ingredients/", IngredientCreateRequest{Name: "Niacinamide"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var created IngredientSchema
	decodeBody(t, recorder, &created)
	assert.Equal(t, "safe", created.SafetyLevel)

	// unknown values are rejected
	bogus := "radioactive"
	recorder = perform(t, router, http.MethodPost, "/ingredients/", IngredientCreateRequest{Name: "Thorium", SafetyLevel: &bogus})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var body errorResponse
	decodeBody(t, recorder, &body)
	assert.Contains(t, body.Detail, "safety level")
}

func TestIngredientPartialUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	purpose := "brightening"
	recorder := perform(t, router, http.MethodPost, "/ingredients/", IngredientCreateRequest{Name: "Niacinamide", Purpose: &purpose})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var created IngredientSchema
	decodeBody(t, recorder, &created)

	level := "caution"
	recorder = perform(t, router, http.MethodPut, fmt.Sprintf("/ingredients/%d", created.ID), IngredientUpdateRequest{SafetyLevel: &level})
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated IngredientSchema
	decodeBody(t, recorder, &updated)
	assert.Equal(t, "caution", updated.SafetyLevel)
	require.NotNil(t, updated.Purpose)
	assert.Equal(t, "brightening", *updated.Purpose)
}
