package report

import (
	"context"
	"time"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
)

// PDFGenerator puerto del render PDF del reporte de inventario.
type PDFGenerator interface {
	GenerateInventoryReport(rows []dto.InventoryReportRowDTO, start, end *time.Time) ([]byte, error)
}

// PDFUseCase produce el reporte de inventario como documento descargable.
type PDFUseCase struct {
	reports   *UseCase
	generator PDFGenerator
}

// NewPDFUseCase construye el caso de uso de exportación.
func NewPDFUseCase(reports *UseCase, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, generator: generator}
}

// InventoryReportPDF computa el reporte con la misma ventana y orden que la
// versión JSON y lo renderiza a PDF.
func (uc *PDFUseCase) InventoryReportPDF(ctx context.Context, start, end *time.Time, sortBy string) ([]byte, error) {
	rows, err := uc.reports.InventoryReport(ctx, start, end, sortBy)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryReport(rows, start, end)
}
