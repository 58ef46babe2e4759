package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"gearguard/internal/entities"
)

// RegisterCustomValidations installs the closed-enumeration rules used by the
// request DTOs.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("user_role", isUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	return nil
}

func isUserRole(fl validator.FieldLevel) bool {
	_, err := entities.ParseRole(fl.Field().String())
	return err == nil
}

func isRequestType(fl validator.FieldLevel) bool {
	_, err := entities.ParseRequestType(fl.Field().String())
	return err == nil
}

func isRequestStatus(fl validator.FieldLevel) bool {
	_, err := entities.ParseRequestStatus(fl.Field().String())
	return err == nil
}
