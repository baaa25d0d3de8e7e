package usecase

import (
	"github.com/jhoicas/inventario-fixtures/internal/application/dto"
	"github.com/jhoicas/inventario-fixtures/internal/domain"
	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
)

// CatalogUseCase lectura de las seis colecciones del fixture. No hay casos de escritura.
type CatalogUseCase struct {
	repo repository.FixtureLookup
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.FixtureLookup) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (uc *CatalogUseCase) ListUsers() dto.ListResponse[entity.User] {
	return dto.NewListResponse(uc.repo.Users())
}

func (uc *CatalogUseCase) ListAreas() dto.ListResponse[entity.Area] {
	return dto.NewListResponse(uc.repo.Areas())
}

func (uc *CatalogUseCase) ListCategories() dto.ListResponse[entity.Category] {
	return dto.NewListResponse(uc.repo.Categories())
}

func (uc *CatalogUseCase) ListEquipment() dto.ListResponse[entity.Equipment] {
	return dto.NewListResponse(uc.repo.Equipment())
}

func (uc *CatalogUseCase) ListProducts() dto.ListResponse[entity.Product] {
	return dto.NewListResponse(uc.repo.Products())
}

func (uc *CatalogUseCase) ListMovements() dto.ListResponse[entity.Movement] {
	return dto.NewListResponse(uc.repo.Movements())
}

// GetUser obtiene un usuario por ID. domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetUser(id string) (*entity.User, error) {
	return found(uc.repo.UserByID(id))
}

func (uc *CatalogUseCase) GetArea(id string) (*entity.Area, error) {
	return found(uc.repo.AreaByID(id))
}

func (uc *CatalogUseCase) GetCategory(id string) (*entity.Category, error) {
	return found(uc.repo.CategoryByID(id))
}

func (uc *CatalogUseCase) GetEquipment(id string) (*entity.Equipment, error) {
	return found(uc.repo.EquipmentByID(id))
}

func (uc *CatalogUseCase) GetProduct(id string) (*entity.Product, error) {
	return found(uc.repo.ProductByID(id))
}

func (uc *CatalogUseCase) GetMovement(id string) (*entity.Movement, error) {
	return found(uc.repo.MovementByID(id))
}

func found[T any](v T, ok bool) (*T, error) {
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}
