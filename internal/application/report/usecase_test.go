package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/report"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

// fakeReportRepo devuelve filas fijas, como las produciría la agregación SQL.
type fakeReportRepo struct {
	inventory []repository.InventoryReportRow
	suppliers []repository.SupplierReportRow
}

func (r *fakeReportRepo) InventoryRows(_ context.Context, _, _ *time.Time) ([]repository.InventoryReportRow, error) {
	return r.inventory, nil
}

func (r *fakeReportRepo) SupplierRows(_ context.Context, _, _ *time.Time) ([]repository.SupplierReportRow, error) {
	return r.suppliers, nil
}

func inventoryFixture() []repository.InventoryReportRow {
	return []repository.InventoryReportRow{
		{ProductID: "p1", SKU: "SKU-1", ProductName: "Arroz", CurrentStock: 40, InQty: 50, OutQty: 10, InValue: decimal.NewFromInt(100)},
		{ProductID: "p2", SKU: "SKU-2", ProductName: "Frijol", CurrentStock: 5, InQty: 20, OutQty: 30, InValue: decimal.NewFromInt(60)},
		// Producto sin actividad: debe aparecer con ceros, nunca filtrarse.
		{ProductID: "p3", SKU: "SKU-3", ProductName: "Aceite", CurrentStock: 0, InQty: 0, OutQty: 0, InValue: decimal.Zero},
		{ProductID: "p4", SKU: "SKU-4", ProductName: "Azúcar", CurrentStock: 40, InQty: 15, OutQty: 5, InValue: decimal.NewFromInt(45)},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseWindow
// ──────────────────────────────────────────────────────────────────────────────

func TestParseWindow_VentanaCompleta(t *testing.T) {
	start, end, err := report.ParseWindow("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, "2025-01-01", start.Format("2006-01-02"))
	assert.Equal(t, "2025-01-31", end.Format("2006-01-02"))
}

func TestParseWindow_ExtremosVacios_SonNil(t *testing.T) {
	start, end, err := report.ParseWindow("", "")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestParseWindow_EndAntesDeStart_EsInvalida(t *testing.T) {
	_, _, err := report.ParseWindow("2025-02-01", "2025-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseWindow_MismoDia_EsValida(t *testing.T) {
	start, end, err := report.ParseWindow("2025-01-15", "2025-01-15")
	require.NoError(t, err)
	assert.True(t, start.Equal(*end), "la ventana de un solo día es válida")
}

func TestParseWindow_FechaMalFormada(t *testing.T) {
	_, _, err := report.ParseWindow("15/01/2025", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// WindowContains — semántica canónica de la ventana (inclusiva, solo fecha)
// ──────────────────────────────────────────────────────────────────────────────

func TestWindowContains_BordesInclusivos(t *testing.T) {
	start, end, err := report.ParseWindow("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"día de inicio a medianoche", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"día de inicio con hora tardía", time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC), true},
		{"día de fin con hora tardía", time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC), true},
		{"último instante del día anterior", time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"primer instante del día posterior", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, report.WindowContains(tc.at, start, end))
		})
	}
}

func TestWindowContains_ExtremosNil(t *testing.T) {
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.True(t, report.WindowContains(at, nil, nil), "sin ventana, todo instante pertenece")

	bound := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, report.WindowContains(at, &bound, nil), "solo inicio: junio queda dentro")
	assert.False(t, report.WindowContains(at, nil, &bound), "solo fin: junio queda fuera")
}

func TestWindowContains_ComparaPorFechaNoPorHora(t *testing.T) {
	// Dos instantes del mismo día deben pertenecer igual aunque uno sea
	// posterior en horas al timestamp del extremo.
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC)
	assert.True(t, report.WindowContains(late, nil, &end))
}

// movementReportRepo agrega movimientos crudos del libro aplicando la misma
// ventana que el adaptador SQL: in/out ventaneados con WindowContains,
// stock actual siempre sin ventana.
type reportMovement struct {
	productID string
	quantity  int64
	createdAt time.Time
}

type movementReportRepo struct {
	products    []repository.InventoryReportRow
	entries     []reportMovement
	withdrawals []reportMovement
}

func (r *movementReportRepo) InventoryRows(_ context.Context, start, end *time.Time) ([]repository.InventoryReportRow, error) {
	out := make([]repository.InventoryReportRow, 0, len(r.products))
	for _, p := range r.products {
		row := repository.InventoryReportRow{
			ProductID: p.ProductID, SKU: p.SKU, ProductName: p.ProductName, InValue: decimal.Zero,
		}
		for _, e := range r.entries {
			if e.productID != p.ProductID {
				continue
			}
			row.CurrentStock += e.quantity
			if report.WindowContains(e.createdAt, start, end) {
				row.InQty += e.quantity
			}
		}
		for _, w := range r.withdrawals {
			if w.productID == p.ProductID && report.WindowContains(w.createdAt, start, end) {
				row.OutQty += w.quantity
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *movementReportRepo) SupplierRows(_ context.Context, _, _ *time.Time) ([]repository.SupplierReportRow, error) {
	return nil, nil
}

func TestInventoryReport_VentanaDeEnero_CuentaSoloEnero(t *testing.T) {
	repo := &movementReportRepo{
		products: []repository.InventoryReportRow{
			{ProductID: "p1", SKU: "SKU-1", ProductName: "Arroz"},
		},
		entries: []reportMovement{
			{productID: "p1", quantity: 7, createdAt: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)},
			{productID: "p1", quantity: 10, createdAt: time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC)},
			{productID: "p1", quantity: 5, createdAt: time.Date(2024, 1, 31, 23, 15, 0, 0, time.UTC)},
			{productID: "p1", quantity: 3, createdAt: time.Date(2024, 2, 1, 0, 5, 0, 0, time.UTC)},
		},
		withdrawals: []reportMovement{
			{productID: "p1", quantity: 4, createdAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)},
			{productID: "p1", quantity: 5, createdAt: time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC)},
		},
	}
	uc := report.NewUseCase(repo)

	start, end, err := report.ParseWindow("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	rows, err := uc.InventoryReport(context.Background(), start, end, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := rows[0]
	assert.Equal(t, int64(15), got.InQty, "solo las recepciones de enero, bordes incluidos")
	assert.Equal(t, int64(4), got.OutQty, "solo los retiros de enero")
	assert.Equal(t, int64(11), got.NetMovement)
	assert.Equal(t, int64(25), got.CurrentStock, "el stock actual nunca se ventanea")
}

// ──────────────────────────────────────────────────────────────────────────────
// InventoryReport
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryReport_NetMovementYFilasSinActividad(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{inventory: inventoryFixture()})

	rows, err := uc.InventoryReport(context.Background(), nil, nil, "")
	require.NoError(t, err)
	require.Len(t, rows, 4, "todos los productos aparecen, con o sin actividad")

	byName := map[string]int64{}
	for _, r := range rows {
		byName[r.ProductName] = r.NetMovement
	}
	assert.Equal(t, int64(40), byName["Arroz"], "net = in - out")
	assert.Equal(t, int64(-20), byName["Frijol"], "el neto puede ser negativo")
	assert.Equal(t, int64(0), byName["Aceite"], "sin actividad: ceros")
}

func TestInventoryReport_OrdenPorDefecto_NombreAscendente(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{inventory: inventoryFixture()})

	rows, err := uc.InventoryReport(context.Background(), nil, nil, "")
	require.NoError(t, err)

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.ProductName)
	}
	assert.Equal(t, []string{"Aceite", "Arroz", "Azúcar", "Frijol"}, names)
}

func TestInventoryReport_OrdenPorStock_DescendenteConEmpatePorNombre(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{inventory: inventoryFixture()})

	rows, err := uc.InventoryReport(context.Background(), nil, nil, report.SortByStock)
	require.NoError(t, err)

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.ProductName)
	}
	// Arroz y Azúcar empatan con 40: desempata el nombre ascendente.
	assert.Equal(t, []string{"Arroz", "Azúcar", "Frijol", "Aceite"}, names)
}

func TestInventoryReport_OrdenPorSalidas(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{inventory: inventoryFixture()})

	rows, err := uc.InventoryReport(context.Background(), nil, nil, report.SortByOut)
	require.NoError(t, err)

	assert.Equal(t, "Frijol", rows[0].ProductName, "mayor salida primero")
	assert.Equal(t, "Aceite", rows[len(rows)-1].ProductName)
}

func TestInventoryReport_OrdenPorNeto(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{inventory: inventoryFixture()})

	rows, err := uc.InventoryReport(context.Background(), nil, nil, report.SortByNet)
	require.NoError(t, err)

	assert.Equal(t, "Arroz", rows[0].ProductName, "neto 40 primero")
	assert.Equal(t, "Frijol", rows[len(rows)-1].ProductName, "neto -20 al final")
}

// Clave de ordenamiento desconocida degrada al orden por nombre.
func TestInventoryReport_ClaveDesconocida_OrdenaPorNombre(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{inventory: inventoryFixture()})

	rows, err := uc.InventoryReport(context.Background(), nil, nil, "precio")
	require.NoError(t, err)
	assert.Equal(t, "Aceite", rows[0].ProductName)
}

// ──────────────────────────────────────────────────────────────────────────────
// SupplierReport
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierReport_NetoYOrden(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{suppliers: []repository.SupplierReportRow{
		{SupplierID: "s1", SupplierName: "Norte", CurrentStock: 10, InQty: 30, OutQty: 5, InValue: decimal.NewFromInt(90)},
		{SupplierID: "s2", SupplierName: "Andina", CurrentStock: 0, InQty: 0, OutQty: 0, InValue: decimal.Zero},
	}})

	rows, err := uc.SupplierReport(context.Background(), nil, nil, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Andina", rows[0].SupplierName, "orden por nombre ascendente")
	assert.Equal(t, int64(25), rows[1].NetMovement)
}
