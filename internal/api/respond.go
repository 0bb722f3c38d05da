package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skinhelper/catalog/pkg/db/store"
)

type errorResponse struct {
	Detail string `json:"Detail"`
}

// respondError maps the store's error taxonomy onto HTTP statuses:
// not-found → 404; conflicts, unresolvable references and usage
// errors → 400; everything else → 500 without leaking the cause.
func respondError(c *gin.Context, err error) {
	var filterErr *store.FilterError
	var missingIDs *store.MissingIDsError
	var missingRef *store.MissingRefError

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: err.Error()})
	case errors.Is(err, store.ErrConflict),
		errors.Is(err, store.ErrInUse),
		errors.As(err, &filterErr),
		errors.As(err, &missingIDs),
		errors.As(err, &missingRef):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, errorResponse{Detail: detail})
}

// pathID parses the numeric :id path parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
