package service

import (
	"errors"
	"fmt"

	"saldo/repository"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("not found")
	// ErrForbidden 记录不属于当前用户
	ErrForbidden = errors.New("forbidden")
	// ErrConflict 数据冲突
	ErrConflict = errors.New("数据冲突")
	// ErrValidation 输入校验失败
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized 认证失败
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken error = conflictError("邮箱已被注册")
	// ErrCategoryInUse 类别仍被消费记录引用
	ErrCategoryInUse error = conflictError("类别下仍有消费记录，无法删除")
)

// conflictError 可直接展示给用户的冲突错误，errors.Is(err, ErrConflict) 为 true
type conflictError string

func (e conflictError) Error() string { return string(e) }

func (e conflictError) Is(target error) bool { return target == ErrConflict }

// ValidationError 字段校验错误，errors.Is(err, ErrValidation) 为 true
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is 使 ValidationError 匹配 ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// fromRepository 将仓储层错误映射为业务错误
func fromRepository(err error) error {
	var fe *repository.FilterError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	case errors.As(err, &fe):
		return invalid(fe.Field, fe.Message)
	default:
		return err
	}
}
