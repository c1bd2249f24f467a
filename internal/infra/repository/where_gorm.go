package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
)

// APIのフィールド名（camelCase）→ カラム名
var columns = map[repo.Field]string{
	repo.FieldID:                 "id",
	repo.FieldName:               "name",
	repo.FieldPrice:              "price",
	repo.FieldIsActive:           "is_active",
	repo.FieldIsDeleted:          "is_deleted",
	repo.FieldStatus:             "status",
	repo.FieldCustomerName:       "customer_name",
	repo.FieldCustomerEmail:      "customer_email",
	repo.FieldCustomerPhone:      "customer_phone",
	repo.FieldNotes:              "notes",
	repo.FieldIsCanceled:         "is_canceled",
	repo.FieldCancellationReason: "cancellation_reason",
	repo.FieldCreatedAt:          "created_at",
	repo.FieldUpdatedAt:          "updated_at",
}

// 述語を種類ごとにWHEREへ変換する
func applyWhere(tx *gorm.DB, preds []repo.Predicate) *gorm.DB {
	for _, p := range preds {
		col, ok := columns[p.Field]
		if !ok {
			// ビルダー側がホワイトリストで弾いているので来ない想定
			continue
		}
		switch p.Op {
		case repo.OpEquals:
			tx = tx.Where(col+" = ?", p.Value)
		case repo.OpContains:
			tx = tx.Where(col+" ILIKE ?", fmt.Sprintf("%%%v%%", p.Value))
		case repo.OpBetween:
			tx = tx.Where(col+" BETWEEN ? AND ?", p.Low, p.High)
		}
	}
	return tx
}

func orderClause(s repo.Sort) string {
	col, ok := columns[s.Field]
	if !ok {
		col = "created_at"
	}
	dir := "desc"
	if s.Order == repo.SortAsc {
		dir = "asc"
	}
	return col + " " + dir
}

func applyWindow(tx *gorm.DB, q repo.ListQuery) *gorm.DB {
	if q.Offset != nil {
		tx = tx.Offset(*q.Offset)
	}
	if q.Limit != nil {
		tx = tx.Limit(*q.Limit)
	}
	return tx
}

// 一意制約・外部キー違反をエラー文字列の照合ではなくSQLSTATEで判定する
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if strings.Contains(pgErr.ConstraintName, "name") {
				return repo.ErrDuplicateName
			}
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "product") {
				return repo.ErrProductReference
			}
		}
	}
	return err
}
