// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lushu/internal/http/handlers"
	"lushu/internal/http/middleware"
	"lushu/internal/infra"
	"lushu/internal/maps"
	"lushu/internal/modules/expense"
	"lushu/internal/modules/plan"
	"lushu/internal/modules/quota"
	"lushu/internal/voice"
)

// RouterDeps carries everything the router wires into handlers.
type RouterDeps struct {
	Verifier  infra.TokenVerifier
	Extractor *voice.Extractor
	Parser    handlers.FieldParser
	Plans     *plan.Service
	Expenses  *expense.Service
	Quota     *quota.Service
	Maps      *maps.Service
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	voiceHandler := handlers.NewVoiceHandler(deps.Extractor, deps.Parser)
	api.POST("/voice/parse", voiceHandler.ParseLocal)
	api.POST("/voice/parse-llm", voiceHandler.ParseLLM)

	planHandler := handlers.NewPlanHandler(deps.Plans)
	api.POST("/plans", planHandler.Generate)
	api.GET("/plans", planHandler.List)
	api.GET("/plans/:id", planHandler.Get)
	api.PUT("/plans/:id", planHandler.Update)
	api.DELETE("/plans/:id", planHandler.Delete)

	expenseHandler := handlers.NewExpenseHandler(deps.Expenses)
	api.POST("/plans/:id/expenses", expenseHandler.Add)
	api.GET("/plans/:id/expenses", expenseHandler.List)
	api.GET("/plans/:id/expenses/summary", expenseHandler.Summary)
	api.PUT("/expenses/:id", expenseHandler.Update)
	api.DELETE("/expenses/:id", expenseHandler.Delete)

	quotaHandler := handlers.NewQuotaHandler(deps.Quota)
	api.GET("/quota", quotaHandler.Remaining)

	navHandler := handlers.NewNavHandler(deps.Maps)
	api.GET("/navigation", navHandler.Navigate)

	return r
}
