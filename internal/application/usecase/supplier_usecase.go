package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo      repository.SupplierRepository
	entryRepo repository.StockEntryRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, entryRepo repository.StockEntryRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, entryRepo: entryRepo}
}

// Create crea un proveedor. Name es único.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Email:       in.Email,
		Phone:       in.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID devuelve el detalle del proveedor con su stock disponible derivado.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSupplierResponse(supplier)
	if onHand, err := uc.entryRepo.SumQuantityBySupplier(id); err == nil {
		resp.OnHand = &onHand
	}
	return resp, nil
}

// Update actualiza los datos de contacto del proveedor.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = in.Name
	supplier.Description = in.Description
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con búsqueda por nombre y paginación.
func (uc *SupplierUseCase) List(search string, limit, offset int) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(search, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Delete elimina un proveedor. Falla con ErrInUse si tiene lotes registrados.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Email:       s.Email,
		Phone:       s.Phone,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
