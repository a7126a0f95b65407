package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock disponible se
// deriva de los lotes; aquí solo se gestiona el catálogo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	entryRepo    repository.StockEntryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	entryRepo repository.StockEntryRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, entryRepo: entryRepo}
}

// Create crea un producto. SKU y Name son únicos; ReorderLevel >= 0.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.CategoryID == "" || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetBySKU(in.SKU); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.repo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		SKU:              in.SKU,
		Name:             in.Name,
		Description:      in.Description,
		CategoryID:       in.CategoryID,
		ReorderLevel:     in.ReorderLevel,
		LowStockNotified: false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve el detalle del producto con su stock disponible derivado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	if onHand, err := uc.entryRepo.SumQuantityByProduct(id); err == nil {
		resp.OnHand = &onHand
	}
	return resp, nil
}

// Update actualiza un producto. No toca el latch de stock bajo: de eso se
// encarga el notificador tras cada mutación del libro.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != product.Name {
		if existing, _ := uc.repo.GetByName(in.Name); existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.ReorderLevel = in.ReorderLevel
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda por nombre/SKU y paginación.
func (uc *ProductUseCase) List(search string, limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(search, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto. Falla con ErrInUse si tiene lotes o retiros.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		SKU:              p.SKU,
		Name:             p.Name,
		Description:      p.Description,
		CategoryID:       p.CategoryID,
		ReorderLevel:     p.ReorderLevel,
		LowStockNotified: p.LowStockNotified,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
