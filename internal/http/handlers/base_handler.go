// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lushu/internal/ai"
	"lushu/internal/modules/expense"
	"lushu/internal/modules/plan"
	"lushu/internal/modules/quota"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors onto HTTP statuses. Anything
// unmapped is a 500 with a generic body so internals never leak.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plan.ErrBadRequest), errors.Is(err, expense.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, plan.ErrNotFound), errors.Is(err, expense.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, quota.ErrQuotaExhausted):
		writeError(c, http.StatusTooManyRequests, "今日生成次数已用完，请明天再试")
	case errors.Is(err, ai.ErrNoJSON), errors.Is(err, ai.ErrMalformedJSON):
		writeError(c, http.StatusBadGateway, "AI 返回格式异常，请重试")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
