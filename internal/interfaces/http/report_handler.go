package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/report"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
)

// ReportHandler maneja los reportes de movimiento (protegido).
type ReportHandler struct {
	uc    *report.UseCase
	pdfUC *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, pdfUC *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdfUC: pdfUC}
}

// Inventory godoc
// @Summary      Reporte de inventario por producto
// @Description  Una fila por producto con stock actual, entradas, salidas y
//
//	movimiento neto sobre la ventana [start, end] inclusiva.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start    query  string  false  "fecha inicial YYYY-MM-DD (vacío = sin límite)"
// @Param        end      query  string  false  "fecha final YYYY-MM-DD (vacío = sin límite)"
// @Param        sort_by  query  string  false  "name | stock | in | out | net (default name)"
// @Success      200  {array}   dto.InventoryReportRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	start, end, err := report.ParseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ventana inválida: fechas YYYY-MM-DD y end >= start"})
	}
	rows, err := h.uc.InventoryReport(c.Context(), start, end, c.Query("sort_by"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// Suppliers godoc
// @Summary      Reporte de movimiento por proveedor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start    query  string  false  "fecha inicial YYYY-MM-DD"
// @Param        end      query  string  false  "fecha final YYYY-MM-DD"
// @Param        sort_by  query  string  false  "name | stock | in | out | net (default name)"
// @Success      200  {array}   dto.SupplierReportRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/suppliers [get]
func (h *ReportHandler) Suppliers(c *fiber.Ctx) error {
	start, end, err := report.ParseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ventana inválida: fechas YYYY-MM-DD y end >= start"})
	}
	rows, err := h.uc.SupplierReport(c.Context(), start, end, c.Query("sort_by"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Description  Misma ventana y orden que la versión JSON, renderizado a PDF.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start    query  string  false  "fecha inicial YYYY-MM-DD"
// @Param        end      query  string  false  "fecha final YYYY-MM-DD"
// @Param        sort_by  query  string  false  "name | stock | in | out | net (default name)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	start, end, err := report.ParseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ventana inválida: fechas YYYY-MM-DD y end >= start"})
	}
	pdfBytes, err := h.pdfUC.InventoryReportPDF(c.Context(), start, end, c.Query("sort_by"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.pdf"`)
	return c.Send(pdfBytes)
}
