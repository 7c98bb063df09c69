package service

import (
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/stalexsm/pas/pkg/errors"
)

// ── 通用业务错误（Handler 按类型映射 HTTP 状态码） ──

var (
	ErrUnauthorized       = errors.New("Необходима авторизация!")
	ErrForbidden          = errors.New("У вас нет доступа для данного действия!")
	ErrInvalidCredentials = errors.New("Неверный логин или пароль!")
	ErrAccessDenied       = errors.New("Доступ запрещен!")
	ErrNotFound           = errors.New("Такой записи не существует!")
	ErrPasswordMismatch   = errors.New("Пароли не совпадают!")
)

// ValidationError 请求内容不满足业务约束（400）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrOrganizationRequiredCreate = &ValidationError{"Невозможно создать запись без организации!"}
	ErrOrganizationRequiredEdit   = &ValidationError{"Невозможно отредактировать запись без организации!"}
	ErrDuplicateEmail             = &ValidationError{"Пользователь с таким email уже существует!"}
	ErrInUse                      = &ValidationError{"Запись используется и не может быть удалена!"}
	ErrReferenceNotFound          = &ValidationError{"Связанная запись не найдена!"}
	ErrMeasureUnitNotFound        = &ValidationError{"Единица измерения не найдена в организации!"}
	ErrInvalidPeriod              = &ValidationError{"Некорректный период!"}
)

// notFound 将 gorm.ErrRecordNotFound 翻译为 ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// constraintError 翻译写入时的约束冲突，非约束错误返回 nil
func constraintError(err error) error {
	switch {
	case pkgerrors.IsUniqueViolation(err):
		return ErrDuplicateEmail
	case pkgerrors.IsForeignKeyViolation(err):
		return ErrReferenceNotFound
	}
	return nil
}

// deleteError 翻译删除时的约束冲突与不存在，其他错误返回 nil
func deleteError(err error) error {
	switch {
	case pkgerrors.IsForeignKeyViolation(err):
		return ErrInUse
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}
	return nil
}
