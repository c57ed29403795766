package routes

import (
	"mecanica_goelzer/internal/adapter/http/handlers"
	"mecanica_goelzer/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI        = "/api"
	PathRelatorios = "/relatorios"
)

type apiHandlers struct {
	entity     *handlers.EntityHandler
	order      *handlers.OrderHandler
	receivable *handlers.ReceivableHandler
	report     *handlers.ReportHandler
	backup     *handlers.BackupHandler
}

func addAPIRoutes(rg *gin.RouterGroup, h apiHandlers) {
	groups := make(map[string]*gin.RouterGroup, len(entities.AllCollections))
	for _, name := range entities.AllCollections {
		groups[name] = addCollectionRoutes(rg, name, h.entity)
	}

	ordens := groups[entities.CollectionOrdens]
	{
		ordens.GET("/proximo_numero", h.order.NextOrderNumber)
		ordens.GET("/:id/total", h.order.Total)
		ordens.POST("/:id/atualizar_estoque", h.order.UpdateStock)
		ordens.POST("/:id/registrar_movimentacao_financeira/:tipo", h.order.PostFinancialMovement)
		ordens.POST("/:id/finalizar", h.order.Fulfill)
	}

	groups[entities.CollectionOrcamentos].GET("/proximo_numero", h.order.NextBudgetNumber)
	groups[entities.CollectionPecas].GET("/:id/margem-lucro", h.report.Margin)

	receivables := groups[entities.CollectionContasAReceber]
	{
		receivables.POST("", h.receivable.Create)
		receivables.POST("/:id/pagar", h.receivable.Pay)
	}

	rg.GET("/dashboard", h.report.Dashboard)
	reports := rg.Group(PathRelatorios)
	{
		reports.GET("/financeiro-anual/:ano", h.report.Annual)
		reports.GET("/financeiro-mensal/:ano/:mes", h.report.Monthly)
		reports.GET("/estoque-baixo", h.report.LowStock)
		reports.GET("/servico/:id", h.report.ServiceReport)
	}

	rg.GET("/backup", h.backup.Backup)
	rg.POST("/restore", h.backup.Restore)
}

// addCollectionRoutes registers the CRUD routes of one collection. Creating a
// receivable goes through the receivable handler instead.
func addCollectionRoutes(rg *gin.RouterGroup, name string, h *handlers.EntityHandler) *gin.RouterGroup {
	g := rg.Group("/" + name)
	g.GET("", h.List(name))
	if name != entities.CollectionContasAReceber {
		g.POST("", h.Create(name))
	}
	g.GET("/:id", h.Get(name))
	g.PUT("/:id", h.Update(name))
	g.DELETE("/:id", h.Delete(name))
	return g
}
