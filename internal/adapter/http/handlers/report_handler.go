package handlers

import (
	"net/http"
	"strconv"

	response "mecanica_goelzer/internal/adapter/http/dto/response"
	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard, financial reports and part/service reports.
type ReportHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewReportHandler(uc usecase.IFinanceUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Dashboard godoc
// @Summary  Current month dashboard
// @Tags     relatorios
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Router   /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// Annual godoc
// @Summary  Annual financial report
// @Tags     relatorios
// @Produce  json
// @Param    ano  path  integer  true  "Year"
// @Success  200  {object}  response.AnnualReportResponse
// @Router   /relatorios/financeiro-anual/{ano} [get]
func (h *ReportHandler) Annual(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("ano"))
	if err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}

	r, err := h.usecase.AnnualReport(c.Request.Context(), year)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, response.FromAnnualReport(r))
}

// Monthly godoc
// @Summary  Monthly financial report
// @Tags     relatorios
// @Produce  json
// @Param    ano  path  integer  true  "Year"
// @Param    mes  path  integer  true  "Month (1-12)"
// @Success  200  {object}  response.MonthlyReportResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /relatorios/financeiro-mensal/{ano}/{mes} [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("ano"))
	if err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}
	month, err := strconv.Atoi(c.Param("mes"))
	if err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}

	r, err := h.usecase.MonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, response.FromMonthlyReport(r))
}

// Margin godoc
// @Summary  Profit margin of a part, in percent
// @Tags     pecas
// @Produce  json
// @Param    id  path  integer  true  "Part id"
// @Success  200  {object}  response.MarginResponse
// @Router   /pecas/{id}/margem-lucro [get]
func (h *ReportHandler) Margin(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		writeAppError(c, errInvalidID)
		return
	}

	m, err := h.usecase.Margin(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, entities.CollectionPecas)
		return
	}
	c.JSON(http.StatusOK, response.MarginResponse{PecaID: id, MargemLucro: m.InexactFloat64()})
}

// LowStock godoc
// @Summary  Parts at or below their minimum stock
// @Tags     relatorios
// @Produce  json
// @Success  200  {array}  response.PartResponse
// @Router   /relatorios/estoque-baixo [get]
func (h *ReportHandler) LowStock(c *gin.Context) {
	parts, err := h.usecase.LowStock(c.Request.Context())
	if err != nil {
		writeError(c, err, entities.CollectionPecas)
		return
	}
	c.JSON(http.StatusOK, response.FromParts(parts))
}

// ServiceReport godoc
// @Summary  Usage of one service across orders
// @Tags     relatorios
// @Produce  json
// @Param    id  path  integer  true  "Service id"
// @Success  200  {object}  response.ServiceReportResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /relatorios/servico/{id} [get]
func (h *ReportHandler) ServiceReport(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		writeAppError(c, errInvalidID)
		return
	}

	r, err := h.usecase.ServiceReport(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, entities.CollectionServicos)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceReport(r))
}
