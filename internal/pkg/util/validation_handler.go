package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FieldError 第一个未通过校验的字段
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]", e.Field, e.Tag)
}

func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return &FieldError{Field: firstError.Field(), Tag: firstError.Tag()}
		}
		return err
	}
	return nil
}
