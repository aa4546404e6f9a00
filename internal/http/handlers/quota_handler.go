// README: Quota handler: report today's remaining generations.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpmiddleware "lushu/internal/http/middleware"
	"lushu/internal/modules/quota"
)

type QuotaHandler struct {
	quota *quota.Service
}

func NewQuotaHandler(svc *quota.Service) *QuotaHandler {
	return &QuotaHandler{quota: svc}
}

func (h *QuotaHandler) Remaining(c *gin.Context) {
	remaining, err := h.quota.Remaining(c.Request.Context(), httpmiddleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"remaining": remaining})
}
