package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	appfinance "github.com/tu-usuario/resto-caja/internal/application/finance"
	"github.com/tu-usuario/resto-caja/internal/infrastructure/htmlexport"
	"github.com/tu-usuario/resto-caja/internal/infrastructure/pdf"
)

// FinanceHandler expone el reporte financiero (JSON, PDF y HTML), el reset y
// la importación de backups. Todas las vistas salen del mismo cálculo.
type FinanceHandler struct {
	reportUC *appfinance.ReportUseCase
	resetUC  *appfinance.ResetUseCase
	importUC *appfinance.ImportUseCase
	pdfGen   *pdf.FinanceReportGenerator
	htmlGen  *htmlexport.ReportBuilder
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(
	reportUC *appfinance.ReportUseCase,
	resetUC *appfinance.ResetUseCase,
	importUC *appfinance.ImportUseCase,
	pdfGen *pdf.FinanceReportGenerator,
	htmlGen *htmlexport.ReportBuilder,
) *FinanceHandler {
	return &FinanceHandler{
		reportUC: reportUC,
		resetUC:  resetUC,
		importUC: importUC,
		pdfGen:   pdfGen,
		htmlGen:  htmlGen,
	}
}

// Report godoc
// @Summary      Reporte financiero del dashboard
// @Description  KPIs de 30 días, series mensual/semanal y top 5 categorías.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FinanceReportDTO
// @Router       /api/finance/report [get]
func (h *FinanceHandler) Report(c *fiber.Ctx) error {
	out, err := h.reportUC.BuildDTO(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Exportar reporte financiero a PDF
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/finance/report/pdf [get]
func (h *FinanceHandler) ReportPDF(c *fiber.Ctx) error {
	report, err := h.reportUC.Build(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	bytes, err := h.pdfGen.Generate(&report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-financiero.pdf"`)
	return c.Send(bytes)
}

// ReportHTML godoc
// @Summary      Exportar reporte financiero a HTML imprimible
// @Tags         finance
// @Security     Bearer
// @Produce      text/html
// @Success      200  {string}  string
// @Router       /api/finance/report/html [get]
func (h *FinanceHandler) ReportHTML(c *fiber.Ctx) error {
	report, err := h.reportUC.Build(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	bytes, err := h.htmlGen.Build(&report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "HTML_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(bytes)
}

// Reset godoc
// @Summary      Reset financiero
// @Description  Borra transacciones, pedidos y reservas; pone en cero los acumulados de clientes. Solo admin.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/finance/reset [post]
func (h *FinanceHandler) Reset(c *fiber.Ctx) error {
	if err := h.resetUC.Reset(GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "reset"})
}

// Import godoc
// @Summary      Importar backup crudo
// @Description  Acepta el JSON exportado por versiones anteriores; registros corruptos se descartan o coercionan.
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SnapshotImportRequest  true  "Colecciones del backup"
// @Success      200   {object}  dto.SnapshotImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/import [post]
func (h *FinanceHandler) Import(c *fiber.Ctx) error {
	var in dto.SnapshotImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.importUC.Import(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
