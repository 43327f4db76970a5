package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/cardcore/internal/constants"
	"github.com/hance08/cardcore/internal/utils"
)

var validate = validator.New()

var (
	cardIDRule     = fmt.Sprintf("required,number,max=%d", constants.MaxCardIDLen)
	pinRule        = fmt.Sprintf("required,number,min=%d,max=%d", constants.MinPINLen, constants.MaxPINLen)
	holderNameRule = fmt.Sprintf("required,max=%d", constants.MaxHolderNameLen)
)

// FieldError describes the first rule a value broke.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Struct validates the `validate` tags of v and reports the first failure.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &FieldError{
		Field:   fe.Field(),
		Tag:     fe.Tag(),
		Message: getErrorMsg(fieldLabel(fe.Field()), fe.Tag(), fe.Param()),
	}
}

func getErrorMsg(label, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s can't be empty", label)
	case "number":
		return fmt.Sprintf("%s must contain only digits", label)
	case "min":
		return fmt.Sprintf("%s too short (min %s characters)", label, param)
	case "max":
		return fmt.Sprintf("%s too long (max %s characters)", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, param)
	default:
		return fmt.Sprintf("invalid %s", label)
	}
}

func fieldLabel(field string) string {
	switch field {
	case "CardID":
		return "card id"
	case "PIN":
		return "PIN"
	case "HolderName":
		return "holder name"
	case "Kind":
		return "transaction type"
	default:
		return strings.ToLower(field)
	}
}

func validateVar(val any, rule, label string) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("%s must be a string", label)
	}

	err := validate.Var(strings.TrimSpace(s), rule)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.New(getErrorMsg(label, fieldErrs[0].Tag(), fieldErrs[0].Param()))
	}
	return err
}

// ValidateCardID accepts any (for prompt compatibility).
func ValidateCardID(val any) error {
	return validateVar(val, cardIDRule, "card id")
}

func ValidatePIN(val any) error {
	return validateVar(val, pinRule, "PIN")
}

func ValidateHolderName(val any) error {
	return validateVar(val, holderNameRule, "holder name")
}

// ValidateInitialBalance validates initial balance input
func ValidateInitialBalance(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("balance must be a string")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	amount, err := utils.ParseAmount(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if amount.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	if !utils.InAmountRange(amount) {
		return fmt.Errorf("initial balance can't exceed %s", constants.MaxAmount)
	}
	if !utils.HasCentPrecision(amount) {
		return fmt.Errorf("initial balance can have at most %d decimal places", constants.AmountScale)
	}
	return nil
}
