package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skinhelper/catalog/pkg/db/models"
	"github.com/skinhelper/catalog/pkg/db/store"
	"github.com/skinhelper/catalog/pkg/log"
)

type productHandlers struct {
	store store.CatalogStore
	log   log.LoggerService
}

func (h *productHandlers) register(group *gin.RouterGroup) {
	group.GET("/all", h.list)
	group.GET("/:id", h.get)
	group.POST("/", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

// queryIDList accepts both repeated parameters (?tag_ids=1&tag_ids=2)
// and comma-separated values (?tag_ids=1,2)
func queryIDList(c *gin.Context, key string) ([]uint, error) {
	var ids []uint
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for '%s'", part, key)
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}

func (h *productHandlers) parseFilter(c *gin.Context) (store.ProductFilter, error) {
	filter := store.ProductFilter{
		Search:   c.Query("search"),
		Name:     c.Query("name"),
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
	}

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, fmt.Errorf("invalid value %q for 'category_id'", raw)
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	idLists := []struct {
		key    string
		target *[]uint
	}{
		{"skin_type_ids", &filter.SkinTypeIDs},
		{"concern_ids", &filter.ConcernIDs},
		{"tag_ids", &filter.TagIDs},
		{"ingredient_ids", &filter.IngredientIDs},
	}
	for _, list := range idLists {
		ids, err := queryIDList(c, list.key)
		if err != nil {
			return filter, err
		}
		*list.target = ids
	}

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid value %q for 'skip'", raw)
		}
		filter.Skip = skip
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid value %q for 'limit'", raw)
		}
		filter.Limit = &limit
	}

	return filter, nil
}

func (h *productHandlers) list(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	products, err := h.store.QueryProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]ProductSchema, len(products))
	for i := range products {
		views[i] = productSchema(&products[i])
	}
	c.JSON(http.StatusOK, views)
}

func (h *productHandlers) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.store.GetProductDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, labeled("product", err))
		return
	}
	c.JSON(http.StatusOK, productDetailSchema(product))
}

func (h *productHandlers) create(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		HowToUse:    req.HowToUse,
		ImageURL:    req.ImageURL,
		VolumeML:    req.VolumeML,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
	}

	created, err := h.store.CreateProduct(c.Request.Context(), product, req.relations())
	if err != nil {
		respondError(c, labeled("product", err))
		return
	}
	c.JSON(http.StatusCreated, productSchema(created))
}

func (h *productHandlers) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	patch := store.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		HowToUse:    req.HowToUse,
		ImageURL:    req.ImageURL,
		VolumeML:    req.VolumeML,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
	}

	updated, err := h.store.UpdateProduct(c.Request.Context(), id, patch, req.relations())
	if err != nil {
		respondError(c, labeled("product", err))
		return
	}
	c.JSON(http.StatusOK, productSchema(updated))
}

func (h *productHandlers) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, labeled("product", err))
		return
	}
	c.Status(http.StatusNoContent)
}
