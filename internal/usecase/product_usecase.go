package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type CreateProductInput struct {
	Name  string
	Price decimal.Decimal
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewDomainError(KindValidation, "name required")
	}
	if len(name) > 100 {
		return model.Product{}, NewDomainError(KindValidation, "name must be at most 100 characters")
	}
	if !in.Price.IsPositive() {
		return model.Product{}, NewDomainError(KindValidation, "price must be greater than 0")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:     name,
		Price:    in.Price,
		IsActive: true,
	})
	if errors.Is(err, repo.ErrDuplicateName) {
		return model.Product{}, NewDomainError(KindDuplicateName, "name already exist")
	}
	if err != nil {
		return model.Product{}, storageError(err)
	}
	return p, nil
}

type UpdateProductInput struct {
	Name     *string
	Price    *decimal.Decimal
	IsActive *bool
}

func (u *ProductUsecase) UpdateProductByID(ctx context.Context, id string, in UpdateProductInput) (model.Product, error) {
	fields := map[string]any{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Product{}, NewDomainError(KindValidation, "name required")
		}
		if len(name) > 100 {
			return model.Product{}, NewDomainError(KindValidation, "name must be at most 100 characters")
		}
		fields["name"] = name
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return model.Product{}, NewDomainError(KindValidation, "price must be greater than 0")
		}
		fields["price"] = *in.Price
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if len(fields) == 0 {
		return model.Product{}, NewDomainError(KindValidation, "no fields to update")
	}

	affected, err := u.productRepo.UpdateFields(ctx, id, fields)
	if errors.Is(err, repo.ErrDuplicateName) {
		return model.Product{}, NewDomainError(KindDuplicateName, "name already exist")
	}
	if err != nil {
		return model.Product{}, storageError(err)
	}
	if affected == 0 {
		return model.Product{}, NewDomainError(KindNotFound, "Product not found")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, storageError(err)
	}
	return p, nil
}

// 論理削除。is_deletedを立てるだけで名前はそのまま残す。
// 名前の一意制約は未削除の行にしか効かないので、同じ名前の再登録はできる。
// 削除済みの行にもUPDATEは当たるので、二度目の削除も成功する（冪等）。
func (u *ProductUsecase) DeleteProductByID(ctx context.Context, id string) error {
	affected, err := u.productRepo.UpdateFields(ctx, id, map[string]any{"is_deleted": true})
	if err != nil {
		return storageError(err)
	}
	if affected == 0 {
		return NewDomainError(KindNotFound, "Product not found")
	}
	return nil
}

func (u *ProductUsecase) FindProductByID(ctx context.Context, id string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewDomainError(KindNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, storageError(err)
	}
	return p, nil
}

type ListProductsOutput struct {
	TotalFiltersCount int64           `json:"totalFiltersCount"`
	Products          []model.Product `json:"products"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ListProductsOutput, error) {
	if in.MinPrice != nil && in.MaxPrice != nil && in.MaxPrice.LessThan(*in.MinPrice) {
		return ListProductsOutput{}, NewDomainError(KindValidation, "maxPrice must be greater than minPrice")
	}
	if err := validateDateRanges(in.CreatedFrom, in.CreatedTo, in.UpdatedFrom, in.UpdatedTo); err != nil {
		return ListProductsOutput{}, err
	}

	sort, err := resolveSort(productSortDefaults, in.SortBy, in.SortOrder)
	if err != nil {
		return ListProductsOutput{}, err
	}
	offset, limit := resolveWindow(in.Page, in.Limit)

	products, total, err := u.productRepo.List(ctx, repo.ListQuery{
		Where:  buildProductFilters(in),
		Sort:   sort,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return ListProductsOutput{}, storageError(err)
	}
	if products == nil {
		products = []model.Product{}
	}

	return ListProductsOutput{
		TotalFiltersCount: total,
		Products:          products,
	}, nil
}
