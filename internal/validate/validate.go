package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var global = validator.New(validator.WithRequiredStructEnabled())

// Struct runs tag validation and flattens the first failure into a plain
// error suitable for surfacing inline.
func Struct(structure any) error {
	err := global.Struct(structure)
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return err
	}
	ve := vErrors[0]
	switch ve.Tag() {
	case "required":
		return fmt.Errorf("%s is required", ve.Field())
	case "email":
		return fmt.Errorf("%s must be a valid email address", ve.Field())
	case "gte", "min":
		return fmt.Errorf("%s must be at least %s", ve.Field(), ve.Param())
	case "lte", "max":
		return fmt.Errorf("%s must be at most %s", ve.Field(), ve.Param())
	default:
		return fmt.Errorf("%s is invalid", ve.Field())
	}
}
