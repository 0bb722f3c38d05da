package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skinhelper/catalog/pkg/db/models"
	"github.com/skinhelper/catalog/pkg/db/store"
)

// namedOps adapts one name-only reference entity to the uniform CRUD
// route set. The five reference routers differ only in these closures.
type namedOps struct {
	label  string
	list   func(ctx context.Context) ([]NamedSchema, error)
	get    func(ctx context.Context, id uint) (NamedSchema, error)
	create func(ctx context.Context, name string) (NamedSchema, error)
	update func(ctx context.Context, id uint, name string) (NamedSchema, error)
	remove func(ctx context.Context, id uint) error
}

func registerNamedRoutes(group *gin.RouterGroup, ops namedOps) {
	group.GET("/", func(c *gin.Context) {
		entities, err := ops.list(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entities)
	})

	group.GET("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		entity, err := ops.get(c.Request.Context(), id)
		if err != nil {
			respondError(c, labeled(ops.label, err))
			return
		}
		c.JSON(http.StatusOK, entity)
	})

	group.POST("/", func(c *gin.Context) {
		var req NamedCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, fmt.Sprintf("invalid request body: %v", err))
			return
		}
		entity, err := ops.create(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, labeled(ops.label, err))
			return
		}
		c.JSON(http.StatusCreated, entity)
	})

	group.PUT("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req NamedUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, fmt.Sprintf("invalid request body: %v", err))
			return
		}
		entity, err := ops.update(c.Request.Context(), id, req.Name)
		if err != nil {
			respondError(c, labeled(ops.label, err))
			return
		}
		c.JSON(http.StatusOK, entity)
	})

	group.DELETE("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := ops.remove(c.Request.Context(), id); err != nil {
			respondError(c, labeled(ops.label, err))
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// labeled prefixes sentinel errors with the entity kind so "not
// found" becomes "brand not found" on the wire.
func labeled(label string, err error) error {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrConflict) {
		return fmt.Errorf("%s %w", label, err)
	}
	return err
}

func brandOps(st store.CatalogStore) namedOps {
	return namedOps{
		label: "brand",
		list: func(ctx context.Context) ([]NamedSchema, error) {
			brands, err := st.ListBrands(ctx)
			if err != nil {
				return nil, err
			}
			views := make([]NamedSchema, len(brands))
			for i, brand := range brands {
				views[i] = NamedSchema{ID: brand.ID, Name: brand.Name}
			}
			return views, nil
		},
		get: func(ctx context.Context, id uint) (NamedSchema, error) {
			brand, err := st.GetBrand(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: brand.ID, Name: brand.Name}, nil
		},
		create: func(ctx context.Context, name string) (NamedSchema, error) {
			brand := &models.Brand{Name: name}
			if err := st.CreateBrand(ctx, brand); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: brand.ID, Name: brand.Name}, nil
		},
		update: func(ctx context.Context, id uint, name string) (NamedSchema, error) {
			brand, err := st.GetBrand(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			brand.Name = name
			if err := st.UpdateBrand(ctx, brand); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: brand.ID, Name: brand.Name}, nil
		},
		remove: st.DeleteBrand,
	}
}

func categoryOps(st store.CatalogStore) namedOps {
	return namedOps{
		label: "category",
		list: func(ctx context.Context) ([]NamedSchema, error) {
			categories, err := st.ListCategories(ctx)
			if err != nil {
				return nil, err
			}
			views := make([]NamedSchema, len(categories))
			for i, category := range categories {
				views[i] = NamedSchema{ID: category.ID, Name: category.Name}
			}
			return views, nil
		},
		get: func(ctx context.Context, id uint) (NamedSchema, error) {
			category, err := st.GetCategory(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: category.ID, Name: category.Name}, nil
		},
		create: func(ctx context.Context, name string) (NamedSchema, error) {
			category := &models.Category{Name: name}
			if err := st.CreateCategory(ctx, category); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: category.ID, Name: category.Name}, nil
		},
		update: func(ctx context.Context, id uint, name string) (NamedSchema, error) {
			category, err := st.GetCategory(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			category.Name = name
			if err := st.UpdateCategory(ctx, category); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: category.ID, Name: category.Name}, nil
		},
		remove: st.DeleteCategory,
	}
}

func skinTypeOps(st store.CatalogStore) namedOps {
	return namedOps{
		label: "skin type",
		list: func(ctx context.Context) ([]NamedSchema, error) {
			skinTypes, err := st.ListSkinTypes(ctx)
			if err != nil {
				return nil, err
			}
			views := make([]NamedSchema, len(skinTypes))
			for i, skinType := range skinTypes {
				views[i] = NamedSchema{ID: skinType.ID, Name: skinType.Name}
			}
			return views, nil
		},
		get: func(ctx context.Context, id uint) (NamedSchema, error) {
			skinType, err := st.GetSkinType(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: skinType.ID, Name: skinType.Name}, nil
		},
		create: func(ctx context.Context, name string) (NamedSchema, error) {
			skinType := &models.SkinType{Name: name}
			if err := st.CreateSkinType(ctx, skinType); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: skinType.ID, Name: skinType.Name}, nil
		},
		update: func(ctx context.Context, id uint, name string) (NamedSchema, error) {
			skinType, err := st.GetSkinType(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			skinType.Name = name
			if err := st.UpdateSkinType(ctx, skinType); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: skinType.ID, Name: skinType.Name}, nil
		},
		remove: st.DeleteSkinType,
	}
}

func concernOps(st store.CatalogStore) namedOps {
	return namedOps{
		label: "concern",
		list: func(ctx context.Context) ([]NamedSchema, error) {
			concerns, err := st.ListConcerns(ctx)
			if err != nil {
				return nil, err
			}
			views := make([]NamedSchema, len(concerns))
			for i, concern := range concerns {
				views[i] = NamedSchema{ID: concern.ID, Name: concern.Name}
			}
			return views, nil
		},
		get: func(ctx context.Context, id uint) (NamedSchema, error) {
			concern, err := st.GetConcern(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: concern.ID, Name: concern.Name}, nil
		},
		create: func(ctx context.Context, name string) (NamedSchema, error) {
			concern := &models.Concern{Name: name}
			if err := st.CreateConcern(ctx, concern); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: concern.ID, Name: concern.Name}, nil
		},
		update: func(ctx context.Context, id uint, name string) (NamedSchema, error) {
			concern, err := st.GetConcern(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			concern.Name = name
			if err := st.UpdateConcern(ctx, concern); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: concern.ID, Name: concern.Name}, nil
		},
		remove: st.DeleteConcern,
	}
}

func tagOps(st store.CatalogStore) namedOps {
	return namedOps{
		label: "tag",
		list: func(ctx context.Context) ([]NamedSchema, error) {
			tags, err := st.ListTags(ctx)
			if err != nil {
				return nil, err
			}
			views := make([]NamedSchema, len(tags))
			for i, tag := range tags {
				views[i] = NamedSchema{ID: tag.ID, Name: tag.Name}
			}
			return views, nil
		},
		get: func(ctx context.Context, id uint) (NamedSchema, error) {
			tag, err := st.GetTag(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: tag.ID, Name: tag.Name}, nil
		},
		create: func(ctx context.Context, name string) (NamedSchema, error) {
			tag := &models.Tag{Name: name}
			if err := st.CreateTag(ctx, tag); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: tag.ID, Name: tag.Name}, nil
		},
		update: func(ctx context.Context, id uint, name string) (NamedSchema, error) {
			tag, err := st.GetTag(ctx, id)
			if err != nil {
				return NamedSchema{}, err
			}
			tag.Name = name
			if err := st.UpdateTag(ctx, tag); err != nil {
				return NamedSchema{}, err
			}
			return NamedSchema{ID: tag.ID, Name: tag.Name}, nil
		},
		remove: st.DeleteTag,
	}
}
