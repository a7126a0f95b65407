package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Name es único.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con búsqueda por nombre y paginación.
func (uc *CategoryUseCase) List(search string, limit, offset int) ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.List(search, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Delete elimina una categoría. Falla con ErrInUse si tiene productos.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}
