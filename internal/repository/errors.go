package repository

import (
	"errors"
	"fmt"

	"github.com/user/movieapi/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("记录不存在")

// translateError 把 GORM 错误转换为业务错误，其余错误包装为存储错误
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var verr *model.ValidationError
	switch {
	case errors.Is(err, ErrNotFound), errors.As(err, &verr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return model.NewValidationError("", "genre_id 或 director_id 引用的记录不存在")
	}
	return fmt.Errorf("%s: %w", op, err)
}
