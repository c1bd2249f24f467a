package repository

// 一覧系の絞り込みは「AND結合の述語の集合」として持ち回る。
// 述語は3種類だけ: 完全一致 / 部分一致 / 範囲。

type Op int

const (
	OpEquals Op = iota
	OpContains
	OpBetween
)

// APIのフィールド名（camelCase）をそのまま識別子にする
type Field string

const (
	FieldID                 Field = "id"
	FieldName               Field = "name"
	FieldPrice              Field = "price"
	FieldIsActive           Field = "isActive"
	FieldIsDeleted          Field = "isDeleted"
	FieldStatus             Field = "status"
	FieldCustomerName       Field = "customerName"
	FieldCustomerEmail      Field = "customerEmail"
	FieldCustomerPhone      Field = "customerPhone"
	FieldNotes              Field = "notes"
	FieldIsCanceled         Field = "isCanceled"
	FieldCancellationReason Field = "cancellationReason"
	FieldCreatedAt          Field = "createdAt"
	FieldUpdatedAt          Field = "updatedAt"
)

// 1フィールドにつき述語は高々1つ
type Predicate struct {
	Field Field
	Op    Op
	Value any // OpEquals / OpContains
	Low   any // OpBetween
	High  any
}

func Equals(f Field, v any) Predicate {
	return Predicate{Field: f, Op: OpEquals, Value: v}
}

func Contains(f Field, s string) Predicate {
	return Predicate{Field: f, Op: OpContains, Value: s}
}

func Between(f Field, low, high any) Predicate {
	return Predicate{Field: f, Op: OpBetween, Low: low, High: high}
}

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

type Sort struct {
	Field Field
	Order SortOrder
}

// OffsetがnilのときはOFFSETなし、LimitがnilのときはLIMITなし。
// 件数カウントはWhereだけを使い、窓は無視する。
type ListQuery struct {
	Where  []Predicate
	Sort   Sort
	Offset *int
	Limit  *int
}

// ソートに使えるフィールドのホワイトリスト

var ProductFields = map[Field]bool{
	FieldID:        true,
	FieldName:      true,
	FieldPrice:     true,
	FieldIsActive:  true,
	FieldIsDeleted: true,
	FieldCreatedAt: true,
	FieldUpdatedAt: true,
}

var OrderFields = map[Field]bool{
	FieldID:                 true,
	FieldCustomerName:       true,
	FieldCustomerEmail:      true,
	FieldCustomerPhone:      true,
	FieldStatus:             true,
	FieldNotes:              true,
	FieldIsCanceled:         true,
	FieldCancellationReason: true,
	FieldCreatedAt:          true,
	FieldUpdatedAt:          true,
}
