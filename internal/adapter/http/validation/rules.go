package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"taskboard/pkg/apierrors"
)

// Tags run against trimmed values; max counts runes.
const (
	emailRule       = "email,max=255"
	nameRule        = "max=255"
	titleRule       = "max=255"
	descriptionRule = "max=65535"
)

var validate = validator.New()

func checkEmail(email string) error {
	if err := validate.Var(email, emailRule); err != nil {
		return invalid(apierrors.MsgInvalidEmail)
	}
	return nil
}

func checkText(value string, rule, msgKey string) error {
	if err := validate.Var(strings.TrimSpace(value), rule); err != nil {
		return invalid(msgKey)
	}
	return nil
}

func checkOptionalText(value *string, rule, msgKey string) error {
	if value == nil {
		return nil
	}
	return checkText(*value, rule, msgKey)
}
