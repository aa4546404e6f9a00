// README: Navigation deep-link handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lushu/internal/maps"
)

type NavHandler struct {
	maps *maps.Service
}

func NewNavHandler(svc *maps.Service) *NavHandler {
	return &NavHandler{maps: svc}
}

// Navigate builds AMap deep links for ?destination= (plus optional
// ?activity= and ?origin=).
func (h *NavHandler) Navigate(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}

	res, err := h.maps.BuildNavigation(c.Request.Context(), destination, c.Query("activity"), c.Query("origin"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
