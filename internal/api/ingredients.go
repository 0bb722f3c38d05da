package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skinhelper/catalog/pkg/db/models"
	"github.com/skinhelper/catalog/pkg/db/store"
	"github.com/skinhelper/catalog/pkg/log"
)

// ingredientHandlers is the reference CRUD plus the safety attributes
type ingredientHandlers struct {
	store store.CatalogStore
	log   log.LoggerService
}

func (h *ingredientHandlers) register(group *gin.RouterGroup) {
	group.GET("/", h.list)
	group.GET("/:id", h.get)
	group.POST("/", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

func (h *ingredientHandlers) list(c *gin.Context) {
	ingredients, err := h.store.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]IngredientSchema, len(ingredients))
	for i := range ingredients {
		views[i] = ingredientSchema(&ingredients[i])
	}
	c.JSON(http.StatusOK, views)
}

func (h *ingredientHandlers) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ingredient, err := h.store.GetIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, labeled("ingredient", err))
		return
	}
	c.JSON(http.StatusOK, ingredientSchema(ingredient))
}

// safetyLevel validates the closed set at the boundary; absent means safe
func safetyLevel(value *string) (models.SafetyLevel, error) {
	if value == nil {
		return models.SafetySafe, nil
	}
	level := models.SafetyLevel(*value)
	if !level.Valid() {
		return "", fmt.Errorf("invalid safety level %q, must be one of: safe, caution, danger, unknown", *value)
	}
	return level, nil
}

func (h *ingredientHandlers) create(c *gin.Context) {
	var req IngredientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	level, err := safetyLevel(req.SafetyLevel)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ingredient := &models.Ingredient{
		Name:             req.Name,
		Purpose:          req.Purpose,
		SafetyLevel:      level,
		MaxConcentration: req.MaxConcentration,
		Carcinogenicity:  req.Carcinogenicity,
		Allergenicity:    req.Allergenicity,
	}
	if err := h.store.CreateIngredient(c.Request.Context(), ingredient); err != nil {
		respondError(c, labeled("ingredient", err))
		return
	}
	c.JSON(http.StatusCreated, ingredientSchema(ingredient))
}

func (h *ingredientHandlers) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req IngredientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	ingredient, err := h.store.GetIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, labeled("ingredient", err))
		return
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Purpose != nil {
		ingredient.Purpose = req.Purpose
	}
	if req.SafetyLevel != nil {
		level, err := safetyLevel(req.SafetyLevel)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		ingredient.SafetyLevel = level
	}
	if req.MaxConcentration != nil {
		ingredient.MaxConcentration = req.MaxConcentration
	}
	if req.Carcinogenicity != nil {
		ingredient.Carcinogenicity = req.Carcinogenicity
	}
	if req.Allergenicity != nil {
		ingredient.Allergenicity = req.Allergenicity
	}

	if err := h.store.UpdateIngredient(c.Request.Context(), ingredient); err != nil {
		respondError(c, labeled("ingredient", err))
		return
	}
	c.JSON(http.StatusOK, ingredientSchema(ingredient))
}

func (h *ingredientHandlers) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteIngredient(c.Request.Context(), id); err != nil {
		respondError(c, labeled("ingredient", err))
		return
	}
	c.Status(http.StatusNoContent)
}
