package handlers

import (
	"log/slog"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the domain enums to gin's validator so DTO binding tags can use them.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		slog.Warn("Gin validator engine is not go-playground/validator; custom rules not registered")
		return
	}

	rules := map[string]validator.Func{
		"periodtoken": func(fl validator.FieldLevel) bool {
			return domain.PeriodToken(fl.Field().String()).Valid()
		},
		"paymentstatus": func(fl validator.FieldLevel) bool {
			return domain.PaymentStatus(fl.Field().String()).Valid()
		},
		"dimension": func(fl validator.FieldLevel) bool {
			return domain.GroupingDimension(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			slog.Error("Failed to register validator", slog.String("tag", tag), slog.String("error", err.Error()))
		}
	}
}
