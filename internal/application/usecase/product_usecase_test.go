package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/usecase"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.categories[c.ID] = c; return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, nil
}
func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) Update(*entity.Category) error { return nil }
func (r *fakeCategoryRepo) List(string, int, int) ([]*entity.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) Delete(string) error { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
	inUse    bool
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) SetLowStockNotified(id string, notified bool) error {
	if p, ok := r.products[id]; ok {
		p.LowStockNotified = notified
	}
	return nil
}
func (r *fakeProductRepo) List(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error {
	if r.inUse {
		return domain.ErrInUse
	}
	delete(r.products, id)
	return nil
}

// fakeEntrySums solo aporta las sumas derivadas.
type fakeEntrySums struct {
	onHand int64
}

func (r *fakeEntrySums) Create(*entity.StockEntry) error                    { return nil }
func (r *fakeEntrySums) GetByID(string) (*entity.StockEntry, error)         { return nil, nil }
func (r *fakeEntrySums) GetForUpdate(string) (*entity.StockEntry, error)    { return nil, nil }
func (r *fakeEntrySums) UpdateQuantity(string, int64) error                 { return nil }
func (r *fakeEntrySums) Update(*entity.StockEntry) error                    { return nil }
func (r *fakeEntrySums) SetExpiryNotified(string, bool) error               { return nil }
func (r *fakeEntrySums) List(int, int) ([]*entity.StockEntry, error)        { return nil, nil }
func (r *fakeEntrySums) ListByProduct(string) ([]*entity.StockEntry, error) { return nil, nil }
func (r *fakeEntrySums) SumQuantityByProduct(string) (int64, error)         { return r.onHand, nil }
func (r *fakeEntrySums) SumQuantityBySupplier(string) (int64, error)        { return r.onHand, nil }
func (r *fakeEntrySums) Delete(string) error                                { return nil }

func newProductUC(onHand int64) (*usecase.ProductUseCase, *fakeProductRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	categories := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"c1": {ID: "c1", Name: "Granos"},
	}}
	uc := usecase.NewProductUseCase(products, categories, &fakeEntrySums{onHand: onHand})
	return uc, products
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_OK(t *testing.T) {
	uc, _ := newProductUC(0)

	out, err := uc.Create(dto.CreateProductRequest{
		SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "c1", ReorderLevel: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "SKU-001", out.SKU)
	assert.False(t, out.LowStockNotified, "el latch nace limpio")
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, _ := newProductUC(0)
	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "c1"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Otro nombre", CategoryID: "c1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_NombreDuplicado(t *testing.T) {
	uc, _ := newProductUC(0)
	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "c1"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-002", Name: "Arroz 1kg", CategoryID: "c1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _ := newProductUC(0)

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ReorderLevelNegativo(t *testing.T) {
	uc, _ := newProductUC(0)

	_, err := uc.Create(dto.CreateProductRequest{
		SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "c1", ReorderLevel: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El detalle expone el stock disponible derivado de los lotes.
func TestProductGetByID_IncluyeOnHandDerivado(t *testing.T) {
	uc, _ := newProductUC(42)
	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "c1"})
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out.OnHand)
	assert.Equal(t, int64(42), *out.OnHand)
}

// Editar el producto no toca el latch de stock bajo.
func TestProductUpdate_NoTocaElLatch(t *testing.T) {
	uc, products := newProductUC(0)
	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "c1"})
	require.NoError(t, err)
	products.products[created.ID].LowStockNotified = true

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name: "Arroz premium 1kg", CategoryID: "c1", ReorderLevel: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "Arroz premium 1kg", out.Name)
	assert.True(t, products.products[created.ID].LowStockNotified, "el latch es del notificador")
}

func TestProductDelete_EnUso(t *testing.T) {
	uc, products := newProductUC(0)
	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Arroz 1kg", CategoryID: "c1"})
	require.NoError(t, err)
	products.inUse = true

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrInUse)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc, _ := newProductUC(0)

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
