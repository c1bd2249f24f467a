package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
)

// GET /v1/product の入力DTO
type ListProductsInput struct {
	Page      *int
	Limit     *int
	SortBy    string
	SortOrder string
	Search    string

	IsActive    *bool
	IsDeleted   *bool
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	UpdatedFrom *time.Time
	UpdatedTo   *time.Time
}

// GET /v1/order の入力DTO
type ListOrdersInput struct {
	Page      *int
	Limit     *int
	SortBy    string
	SortOrder string
	Search    string

	Status        *string
	IsCanceled    *bool
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	UpdatedFrom   *time.Time
	UpdatedTo     *time.Time
}

// 商品一覧のWHEREを組み立てる。
// isDeletedは未指定ならfalse（削除済みは見せない）。
func buildProductFilters(in ListProductsInput) []repo.Predicate {
	preds := make([]repo.Predicate, 0, 6)

	if in.IsActive != nil {
		preds = append(preds, repo.Equals(repo.FieldIsActive, *in.IsActive))
	}

	isDeleted := false
	if in.IsDeleted != nil {
		isDeleted = *in.IsDeleted
	}
	preds = append(preds, repo.Equals(repo.FieldIsDeleted, isDeleted))

	// 範囲系は両端が揃ったときだけ効く。片側だけなら黙って無視。
	if in.MinPrice != nil && in.MaxPrice != nil {
		preds = append(preds, repo.Between(repo.FieldPrice, *in.MinPrice, *in.MaxPrice))
	}
	if in.CreatedFrom != nil && in.CreatedTo != nil {
		preds = append(preds, repo.Between(repo.FieldCreatedAt, *in.CreatedFrom, *in.CreatedTo))
	}
	if in.UpdatedFrom != nil && in.UpdatedTo != nil {
		preds = append(preds, repo.Between(repo.FieldUpdatedAt, *in.UpdatedFrom, *in.UpdatedTo))
	}

	// searchはname部分一致。他フィールドへのORはしない。
	if in.Search != "" {
		preds = replacePredicate(preds, repo.Contains(repo.FieldName, in.Search))
	}

	return preds
}

// 注文一覧のWHEREを組み立てる。
func buildOrderFilters(in ListOrdersInput) []repo.Predicate {
	preds := make([]repo.Predicate, 0, 8)

	if in.Status != nil {
		preds = append(preds, repo.Equals(repo.FieldStatus, *in.Status))
	}
	if in.IsCanceled != nil {
		preds = append(preds, repo.Equals(repo.FieldIsCanceled, *in.IsCanceled))
	}
	if in.CustomerName != nil {
		preds = append(preds, repo.Contains(repo.FieldCustomerName, *in.CustomerName))
	}
	if in.CustomerEmail != nil {
		preds = append(preds, repo.Contains(repo.FieldCustomerEmail, *in.CustomerEmail))
	}
	if in.CustomerPhone != nil {
		preds = append(preds, repo.Contains(repo.FieldCustomerPhone, *in.CustomerPhone))
	}

	if in.CreatedFrom != nil && in.CreatedTo != nil {
		preds = append(preds, repo.Between(repo.FieldCreatedAt, *in.CreatedFrom, *in.CreatedTo))
	}
	if in.UpdatedFrom != nil && in.UpdatedTo != nil {
		preds = append(preds, repo.Between(repo.FieldUpdatedAt, *in.UpdatedFrom, *in.UpdatedTo))
	}

	// searchはcustomerNameの述語を上書きする（両方来たらsearchが勝つ）
	if in.Search != "" {
		preds = replacePredicate(preds, repo.Contains(repo.FieldCustomerName, in.Search))
	}

	return preds
}

// 揃っている範囲は from < to でなければならない
func validateDateRanges(createdFrom, createdTo, updatedFrom, updatedTo *time.Time) error {
	if createdFrom != nil && createdTo != nil && !createdTo.After(*createdFrom) {
		return NewDomainError(KindValidation, "createdTo must be greater than createdFrom")
	}
	if updatedFrom != nil && updatedTo != nil && !updatedTo.After(*updatedFrom) {
		return NewDomainError(KindValidation, "updatedTo must be greater than updatedFrom")
	}
	return nil
}

// 同じフィールドの述語があれば置き換え、なければ追加
func replacePredicate(preds []repo.Predicate, p repo.Predicate) []repo.Predicate {
	for i := range preds {
		if preds[i].Field == p.Field {
			preds[i] = p
			return preds
		}
	}
	return append(preds, p)
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// page/limit を OFFSET/LIMIT に正規化する。
// 0を明示されたときは「窓なし」の意味になる（page=0 または limit=0 でOFFSETなし、
// limit=0 でLIMITもなし）。既定は page=1 / limit=10。
func resolveWindow(page, limit *int) (*int, *int) {
	p := defaultPage
	if page != nil {
		p = *page
	}
	l := defaultLimit
	if limit != nil {
		l = *limit
	}

	var offset *int
	if p != 0 && l != 0 {
		o := l * (p - 1)
		offset = &o
	}

	var lim *int
	if l != 0 {
		lim = &l
	}

	return offset, lim
}

// エンティティごとの既定ソート
type sortDefaults struct {
	field  repo.Field
	order  repo.SortOrder
	fields map[repo.Field]bool
}

var (
	productSortDefaults = sortDefaults{field: repo.FieldName, order: repo.SortDesc, fields: repo.ProductFields}
	orderSortDefaults   = sortDefaults{field: repo.FieldCreatedAt, order: repo.SortDesc, fields: repo.OrderFields}
)

func resolveSort(d sortDefaults, sortBy, sortOrder string) (repo.Sort, error) {
	s := repo.Sort{Field: d.field, Order: d.order}

	if sortBy != "" {
		f := repo.Field(sortBy)
		if !d.fields[f] {
			return repo.Sort{}, NewDomainError(KindValidation, "invalid sortBy")
		}
		s.Field = f
	}

	switch strings.ToUpper(sortOrder) {
	case "":
	case string(repo.SortAsc):
		s.Order = repo.SortAsc
	case string(repo.SortDesc):
		s.Order = repo.SortDesc
	default:
		return repo.Sort{}, NewDomainError(KindValidation, "invalid sortOrder")
	}

	return s, nil
}
