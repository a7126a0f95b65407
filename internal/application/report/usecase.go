package report

import (
	"context"
	"sort"
	"time"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

// Claves de ordenamiento del reporte. name ordena ascendente; el resto
// descendente con empate por nombre ascendente.
const (
	SortByName  = "name"
	SortByStock = "stock"
	SortByIn    = "in"
	SortByOut   = "out"
	SortByNet   = "net"
)

const dateLayout = "2006-01-02"

// UseCase computa los reportes de movimiento por producto y por proveedor.
// Las sumas vienen del repositorio (agregación en SQL); el ordenamiento y
// net_movement se resuelven aquí.
type UseCase struct {
	repo repository.ReportRepository
}

// NewUseCase construye el motor de reportes.
func NewUseCase(repo repository.ReportRepository) *UseCase {
	return &UseCase{repo: repo}
}

// ParseWindow convierte las fechas "2006-01-02" de la query en la ventana
// inclusiva [start, end]. Cadena vacía = sin límite por ese extremo.
func ParseWindow(start, end string) (*time.Time, *time.Time, error) {
	var s, e *time.Time
	if start != "" {
		d, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		s = &d
	}
	if end != "" {
		d, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		e = &d
	}
	if s != nil && e != nil && e.Before(*s) {
		return nil, nil, domain.ErrInvalidInput
	}
	return s, e, nil
}

// WindowContains indica si un instante cae dentro de la ventana inclusiva
// [start, end]. La comparación es por fecha (la hora se descarta) y un
// extremo nil significa sin límite. Es la semántica canónica de la ventana
// de reportes; el predicado SQL del adaptador de Postgres la reproduce.
func WindowContains(t time.Time, start, end *time.Time) bool {
	day := dateOnly(t)
	if start != nil && day.Before(dateOnly(*start)) {
		return false
	}
	if end != nil && day.After(dateOnly(*end)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// InventoryReport devuelve una fila por producto (incluyendo los sin
// actividad, con ceros) con current_stock, in_qty, out_qty y
// net_movement = in_qty - out_qty sobre la ventana.
func (uc *UseCase) InventoryReport(ctx context.Context, start, end *time.Time, sortBy string) ([]dto.InventoryReportRowDTO, error) {
	rows, err := uc.repo.InventoryRows(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryReportRowDTO{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			ProductName:  r.ProductName,
			CurrentStock: r.CurrentStock,
			InQty:        r.InQty,
			OutQty:       r.OutQty,
			NetMovement:  r.InQty - r.OutQty,
			InValue:      r.InValue,
		})
	}
	sortInventoryRows(out, sortBy)
	return out, nil
}

// SupplierReport es el espejo del reporte de inventario a granularidad de
// proveedor, agregando a través de los lotes de cada proveedor.
func (uc *UseCase) SupplierReport(ctx context.Context, start, end *time.Time, sortBy string) ([]dto.SupplierReportRowDTO, error) {
	rows, err := uc.repo.SupplierRows(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SupplierReportRowDTO{
			SupplierID:   r.SupplierID,
			SupplierName: r.SupplierName,
			CurrentStock: r.CurrentStock,
			InQty:        r.InQty,
			OutQty:       r.OutQty,
			NetMovement:  r.InQty - r.OutQty,
			InValue:      r.InValue,
		})
	}
	sortSupplierRows(out, sortBy)
	return out, nil
}

// sortInventoryRows ordena por la clave pedida. name asciende; stock/in/out/
// net descienden con empate por nombre ascendente (determinista).
func sortInventoryRows(rows []dto.InventoryReportRowDTO, sortBy string) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch sortBy {
		case SortByStock:
			if a.CurrentStock != b.CurrentStock {
				return a.CurrentStock > b.CurrentStock
			}
		case SortByIn:
			if a.InQty != b.InQty {
				return a.InQty > b.InQty
			}
		case SortByOut:
			if a.OutQty != b.OutQty {
				return a.OutQty > b.OutQty
			}
		case SortByNet:
			if a.NetMovement != b.NetMovement {
				return a.NetMovement > b.NetMovement
			}
		}
		return a.ProductName < b.ProductName
	})
}

func sortSupplierRows(rows []dto.SupplierReportRowDTO, sortBy string) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch sortBy {
		case SortByStock:
			if a.CurrentStock != b.CurrentStock {
				return a.CurrentStock > b.CurrentStock
			}
		case SortByIn:
			if a.InQty != b.InQty {
				return a.InQty > b.InQty
			}
		case SortByOut:
			if a.OutQty != b.OutQty {
				return a.OutQty > b.OutQty
			}
		case SortByNet:
			if a.NetMovement != b.NetMovement {
				return a.NetMovement > b.NetMovement
			}
		}
		return a.SupplierName < b.SupplierName
	})
}
