package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
)

func findPredicate(preds []repo.Predicate, f repo.Field) (repo.Predicate, bool) {
	for _, p := range preds {
		if p.Field == f {
			return p, true
		}
	}
	return repo.Predicate{}, false
}

func TestBuildProductFilters_DefaultHidesDeleted(t *testing.T) {
	preds := buildProductFilters(ListProductsInput{})

	assert.Len(t, preds, 1)
	assert.Equal(t, repo.Equals(repo.FieldIsDeleted, false), preds[0])
}

func TestBuildProductFilters_ExplicitIsDeleted(t *testing.T) {
	deleted := true
	preds := buildProductFilters(ListProductsInput{IsDeleted: &deleted})

	p, ok := findPredicate(preds, repo.FieldIsDeleted)
	assert.True(t, ok)
	assert.Equal(t, true, p.Value)
}

func TestBuildProductFilters_PriceRangeNeedsBothBounds(t *testing.T) {
	min := decimal.NewFromInt(10)

	// 片側だけなら黙って無視
	preds := buildProductFilters(ListProductsInput{MinPrice: &min})
	_, ok := findPredicate(preds, repo.FieldPrice)
	assert.False(t, ok)

	max := decimal.NewFromInt(50)
	preds = buildProductFilters(ListProductsInput{MinPrice: &min, MaxPrice: &max})
	p, ok := findPredicate(preds, repo.FieldPrice)
	assert.True(t, ok)
	assert.Equal(t, repo.OpBetween, p.Op)
}

func TestBuildProductFilters_DateRangeNeedsBothBounds(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	preds := buildProductFilters(ListProductsInput{CreatedFrom: &from})
	_, ok := findPredicate(preds, repo.FieldCreatedAt)
	assert.False(t, ok)

	to := from.AddDate(0, 1, 0)
	preds = buildProductFilters(ListProductsInput{CreatedFrom: &from, CreatedTo: &to})
	p, ok := findPredicate(preds, repo.FieldCreatedAt)
	assert.True(t, ok)
	assert.Equal(t, repo.OpBetween, p.Op)
}

func TestBuildProductFilters_SearchMatchesName(t *testing.T) {
	preds := buildProductFilters(ListProductsInput{Search: "coffee"})

	p, ok := findPredicate(preds, repo.FieldName)
	assert.True(t, ok)
	assert.Equal(t, repo.OpContains, p.Op)
	assert.Equal(t, "coffee", p.Value)
}

func TestBuildOrderFilters_SearchOverridesCustomerName(t *testing.T) {
	name := "alice"
	preds := buildOrderFilters(ListOrdersInput{CustomerName: &name, Search: "john"})

	// customerNameの述語は1本だけで、searchが勝つ
	count := 0
	for _, p := range preds {
		if p.Field == repo.FieldCustomerName {
			count++
			assert.Equal(t, "john", p.Value)
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildOrderFilters_EqualsAndContains(t *testing.T) {
	status := "pending"
	canceled := false
	email := "@example.com"
	preds := buildOrderFilters(ListOrdersInput{
		Status:        &status,
		IsCanceled:    &canceled,
		CustomerEmail: &email,
	})

	p, ok := findPredicate(preds, repo.FieldStatus)
	assert.True(t, ok)
	assert.Equal(t, repo.OpEquals, p.Op)

	p, ok = findPredicate(preds, repo.FieldIsCanceled)
	assert.True(t, ok)
	assert.Equal(t, false, p.Value)

	p, ok = findPredicate(preds, repo.FieldCustomerEmail)
	assert.True(t, ok)
	assert.Equal(t, repo.OpContains, p.Op)
}

func TestResolveWindow_Defaults(t *testing.T) {
	offset, limit := resolveWindow(nil, nil)

	assert.NotNil(t, offset)
	assert.Equal(t, 0, *offset)
	assert.NotNil(t, limit)
	assert.Equal(t, 10, *limit)
}

func TestResolveWindow_PageThree(t *testing.T) {
	page, lim := 3, 5
	offset, limit := resolveWindow(&page, &lim)

	assert.Equal(t, 10, *offset)
	assert.Equal(t, 5, *limit)
}

// page=0 は「OFFSETなし」の意味
func TestResolveWindow_ZeroPageDisablesOffset(t *testing.T) {
	page := 0
	offset, limit := resolveWindow(&page, nil)

	assert.Nil(t, offset)
	assert.NotNil(t, limit)
	assert.Equal(t, 10, *limit)
}

// limit=0 は窓そのものを外す
func TestResolveWindow_ZeroLimitDisablesWindow(t *testing.T) {
	lim := 0
	offset, limit := resolveWindow(nil, &lim)

	assert.Nil(t, offset)
	assert.Nil(t, limit)
}

func TestResolveSort_ProductDefaults(t *testing.T) {
	s, err := resolveSort(productSortDefaults, "", "")

	assert.NoError(t, err)
	assert.Equal(t, repo.FieldName, s.Field)
	assert.Equal(t, repo.SortDesc, s.Order)
}

func TestResolveSort_OrderDefaults(t *testing.T) {
	s, err := resolveSort(orderSortDefaults, "", "")

	assert.NoError(t, err)
	assert.Equal(t, repo.FieldCreatedAt, s.Field)
	assert.Equal(t, repo.SortDesc, s.Order)
}

func TestResolveSort_ExplicitFieldAndOrder(t *testing.T) {
	s, err := resolveSort(productSortDefaults, "price", "asc")

	assert.NoError(t, err)
	assert.Equal(t, repo.FieldPrice, s.Field)
	assert.Equal(t, repo.SortAsc, s.Order)
}

func TestResolveSort_RejectsUnknownField(t *testing.T) {
	_, err := resolveSort(productSortDefaults, "customerName", "")

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, KindValidation, de.Kind)
	assert.Equal(t, "invalid sortBy", de.Message)
}

func TestResolveSort_RejectsUnknownOrder(t *testing.T) {
	_, err := resolveSort(orderSortDefaults, "", "sideways")

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid sortOrder", de.Message)
}
