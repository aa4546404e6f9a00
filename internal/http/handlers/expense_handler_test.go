// README: Integration tests for expense handler auth and validation paths.
package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"lushu/internal/http/handlers"
	httpmiddleware "lushu/internal/http/middleware"
	"lushu/internal/infra"
	"lushu/internal/modules/expense"
)

// buildExpenseRouter wires a minimal engine with the auth middleware and the
// expense handler. expense.NewService(nil, nil) is safe here because every
// request below fails validation or auth before any store method is called.
func buildExpenseRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpmiddleware.Auth(verifier))
	h := handlers.NewExpenseHandler(expense.NewService(nil, nil))
	r.PUT("/api/expenses/:id", h.Update)
	return r
}

func TestUpdateExpense_Unauthenticated(t *testing.T) {
	r := buildExpenseRouter(&stubTokenVerifier{err: errors.New("no token")})
	w := doRequest(r, http.MethodPut, "/api/expenses/e1", map[string]any{
		"amount": 120,
	}, "Bearer badtoken")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestUpdateExpense_InvalidAmount(t *testing.T) {
	r := buildExpenseRouter(&stubTokenVerifier{identity: infra.Identity{UID: "u1"}})
	w := doRequest(r, http.MethodPut, "/api/expenses/e1", map[string]any{
		"amount": -5,
	}, "Bearer token")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateExpense_BadDate(t *testing.T) {
	r := buildExpenseRouter(&stubTokenVerifier{identity: infra.Identity{UID: "u1"}})
	w := doRequest(r, http.MethodPut, "/api/expenses/e1", map[string]any{
		"date": "19/06/2025",
	}, "Bearer token")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
