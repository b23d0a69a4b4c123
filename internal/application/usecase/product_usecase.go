package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	domaininv "github.com/jhoicas/almoxarifado-api/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El código se asigna al crear y no
// cambia; el borrado elimina en cascada los movimientos del producto.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, now: time.Now}
}

// List lista todos los productos ordenados por descripción.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Create crea un producto con el siguiente código secuencial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	now := uc.now()
	product := &entity.Product{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	applyProductFields(product, in)

	err := uc.txRunner.Run(ctx, func(
		ctx context.Context,
		productRepo repository.ProductRepository,
		_ repository.MovementRepository,
	) error {
		code, err := productRepo.NextCode(ctx)
		if err != nil {
			return err
		}
		product.Code = code
		return productRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update sobrescribe los campos editables. Code no se modifica.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id es obligatorio", domain.ErrInvalidInput)
	}
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	applyProductFields(product, in)
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto y todos sus movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.DeleteProductResponse, error) {
	var (
		description string
		removed     int64
	)
	err := uc.txRunner.Run(ctx, func(
		ctx context.Context,
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
		}
		if err := productRepo.Delete(ctx, id); err != nil {
			return err
		}
		n, err := movementRepo.DeleteByProduct(ctx, id)
		if err != nil {
			return err
		}
		description, removed = product.Description, n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeleteProductResponse{
		Success:          true,
		Message:          fmt.Sprintf("Producto '%s' eliminado con éxito.", description),
		MovementsRemoved: removed,
	}, nil
}

func validateProduct(in *dto.ProductRequest) error {
	in.Description = domaininv.NormalizeDescription(in.Description)
	if in.Description == "" || in.Quantity == nil {
		return fmt.Errorf("%w: description y quantity son obligatorios", domain.ErrInvalidInput)
	}
	if *in.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	return nil
}

func applyProductFields(p *entity.Product, in dto.ProductRequest) {
	p.Description = in.Description
	p.Quantity = *in.Quantity
	p.Unit = strings.TrimSpace(in.Unit)
	p.SupplementaryDescription = in.SupplementaryDescription
	p.Expiry = in.Expiry
	p.Supplier = in.Supplier
	p.ProcessNumber = in.ProcessNumber
	p.Notes = in.Notes
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                       p.ID,
		Code:                     p.Code,
		Description:              p.Description,
		Quantity:                 p.Quantity,
		Unit:                     p.Unit,
		SupplementaryDescription: p.SupplementaryDescription,
		Expiry:                   p.Expiry,
		Supplier:                 p.Supplier,
		ProcessNumber:            p.ProcessNumber,
		Notes:                    p.Notes,
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
}
