// README: Travel plan handlers for generate/list/get/update/delete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lushu/internal/ai"
	httpmiddleware "lushu/internal/http/middleware"
	"lushu/internal/modules/plan"
)

type PlanHandler struct {
	plans *plan.Service
}

func NewPlanHandler(svc *plan.Service) *PlanHandler {
	return &PlanHandler{plans: svc}
}

type generatePlanReq struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Budget      int    `json:"budget"`
	Travelers   int    `json:"travelers"`
	Preferences string `json:"preferences"`
}

func (h *PlanHandler) Generate(c *gin.Context) {
	var req generatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	p, err := h.plans.Generate(c.Request.Context(), httpmiddleware.CallerUID(c), ai.PlanRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, p)
}

func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context(), httpmiddleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, plans)
}

func (h *PlanHandler) Get(c *gin.Context) {
	p, err := h.plans.Get(c.Request.Context(), c.Param("id"), httpmiddleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

type updatePlanReq struct {
	Title       *string `json:"title"`
	Budget      *int    `json:"budget"`
	Travelers   *int    `json:"travelers"`
	Preferences *string `json:"preferences"`
}

func (h *PlanHandler) Update(c *gin.Context) {
	var req updatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.plans.Update(c.Request.Context(), c.Param("id"), httpmiddleware.CallerUID(c), plan.UpdateCommand{
		Title:       req.Title,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.plans.Delete(c.Request.Context(), c.Param("id"), httpmiddleware.CallerUID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": true})
}
