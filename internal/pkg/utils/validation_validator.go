package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate    *validator.Validate
	slotIDRegex = regexp.MustCompile(`^[0-9]{16}$`)
	clockRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_id", validateSlotID)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("slot_interval", validateSlotInterval)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlotID(fl validator.FieldLevel) bool {
	return slotIDRegex.MatchString(fl.Field().String())
}

func validateClock(fl validator.FieldLevel) bool {
	return clockRegex.MatchString(fl.Field().String())
}

// 0 lets the arena's configured interval apply.
func validateSlotInterval(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 0, 15, 30, 60:
		return true
	}
	return false
}
