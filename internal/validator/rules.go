package validator

import (
	"log"

	"github.com/go-playground/validator/v10"
)

// Типы ставок услуг, которые принимает профиль
const (
	FeeTypeFixed      = "fixed"
	FeeTypeHourly     = "hourly"
	FeeTypeNegotiable = "negotiable"
)

// registerCustomRules регистрирует кастомные правила валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-fee-type': тип ставки услуги
	mustRegister("is-fee-type", validateFeeType)
}

func validateFeeType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}

	switch value {
	case FeeTypeFixed, FeeTypeHourly, FeeTypeNegotiable:
		return true
	default:
		return false
	}
}
