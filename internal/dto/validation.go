package dto

import (
	"github.com/SscSPs/mma_audit/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the audit_category and audit_status tags used by
// the activity DTOs.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("audit_category", func(fl validator.FieldLevel) bool {
		return domain.AuditCategory(fl.Field().String()).IsKnown()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("audit_status", func(fl validator.FieldLevel) bool {
		return domain.AuditStatus(fl.Field().String()).IsKnown()
	})
}
