// README: Expense handlers: add/list/delete plus the per-plan summary.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpmiddleware "lushu/internal/http/middleware"
	"lushu/internal/modules/expense"
	"lushu/internal/types"
)

type ExpenseHandler struct {
	expenses *expense.Service
}

func NewExpenseHandler(svc *expense.Service) *ExpenseHandler {
	return &ExpenseHandler{expenses: svc}
}

type addExpenseReq struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Amount      int64  `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

func (h *ExpenseHandler) Add(c *gin.Context) {
	var req addExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	e, err := h.expenses.Add(c.Request.Context(), httpmiddleware.CallerUID(c), &expense.Expense{
		PlanID:      c.Param("id"),
		Category:    req.Category,
		Description: req.Description,
		Amount:      types.CNY(req.Amount),
		Date:        req.Date,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, e)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.List(c.Request.Context(), c.Param("id"), httpmiddleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, expenses)
}

func (h *ExpenseHandler) Summary(c *gin.Context) {
	sum, err := h.expenses.Summarize(c.Request.Context(), c.Param("id"), httpmiddleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sum)
}

type updateExpenseReq struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"`
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req updateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	e, err := h.expenses.Update(c.Request.Context(), c.Param("id"), httpmiddleware.CallerUID(c), expense.UpdateCommand{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenses.Delete(c.Request.Context(), c.Param("id"), httpmiddleware.CallerUID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": true})
}
