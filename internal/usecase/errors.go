package usecase

import "errors"

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindDuplicateName
	KindProductReference
	KindStorage
)

// ドメインエラー。トランスポート層では種類を問わず400で返す。
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(kind ErrorKind, message string) error {
	return &DomainError{
		Kind:    kind,
		Message: message,
	}
}

func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	ok := errors.As(err, &de)
	return de, ok
}

// 想定外のストレージエラーはメッセージをそのまま運ぶ
func storageError(err error) error {
	return &DomainError{Kind: KindStorage, Message: err.Error()}
}
