package serviceimpl

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/PayRam/go-storefront/service"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their form name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateRequest checks the validate tags of req.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return service.Validation("invalid request: %v", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if fieldErr.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s must satisfy %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s must satisfy %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return service.Validation("invalid request: %s", strings.Join(messages, "; "))
}

// translateError maps a gorm or driver error to a *service.Error. what names
// the affected row, e.g. "branch 3".
func translateError(db *gorm.DB, err error, what string) error {
	if err == nil {
		return nil
	}

	var serviceErr *service.Error
	if errors.As(err, &serviceErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.NotFound("%s not found", what)
	}

	translated := err
	if translator, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		translated = translator.Translate(err)
	}

	switch {
	case errors.Is(translated, gorm.ErrDuplicatedKey):
		return service.ConstraintViolation(fmt.Sprintf("%s conflicts with an existing row", what), err)
	case errors.Is(translated, gorm.ErrForeignKeyViolated):
		return service.ConstraintViolation(fmt.Sprintf("%s references a missing row or is still referenced", what), err)
	case errors.Is(translated, gorm.ErrCheckConstraintViolated), isConstraintMessage(err):
		return service.ConstraintViolation(fmt.Sprintf("%s violates a constraint", what), err)
	}
	return service.Internal(fmt.Sprintf("failed to access %s", what), err)
}

// isConstraintMessage catches constraint failures a dialect does not translate.
func isConstraintMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "violates unique constraint")
}
