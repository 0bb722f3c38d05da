package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skinhelper/catalog/pkg/db/store"
	"github.com/skinhelper/catalog/pkg/log"
)

// NewRouter builds the catalog's HTTP surface on the given store
func NewRouter(st store.CatalogStore, logger log.LoggerService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger.Named("http")))

	router.GET("/health", func(c *gin.Context) {
		if err := st.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"Status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"Status": "ok"})
	})

	products := &productHandlers{store: st, log: logger.Named("products")}
	products.register(router.Group("/products"))

	ingredients := &ingredientHandlers{store: st, log: logger.Named("ingredients")}
	ingredients.register(router.Group("/ingredients"))

	registerNamedRoutes(router.Group("/brands"), brandOps(st))
	registerNamedRoutes(router.Group("/categories"), categoryOps(st))
	registerNamedRoutes(router.Group("/skin-types"), skinTypeOps(st))
	registerNamedRoutes(router.Group("/concerns"), concernOps(st))
	registerNamedRoutes(router.Group("/tags"), tagOps(st))

	return router
}
