package validator

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	RegisterCustomValidations(validate)
}

func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("lat", func(fl validator.FieldLevel) bool {
		lat := fl.Field().Float()
		return !math.IsNaN(lat) && lat >= -90 && lat <= 90
	})
	_ = v.RegisterValidation("lng", func(fl validator.FieldLevel) bool {
		lng := fl.Field().Float()
		return !math.IsNaN(lng) && lng >= -180 && lng <= 180
	})
	_ = v.RegisterValidation("meters", func(fl validator.FieldLevel) bool {
		m := fl.Field().Float()
		return !math.IsNaN(m) && !math.IsInf(m, 0) && m >= 0
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
