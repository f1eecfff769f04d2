package validation

import (
	"strings"
	"unicode/utf8"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
)

func BuildRegisterInput(req dto.RegisterRequest) (domain.RegisterInput, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return domain.RegisterInput{}, invalid(apierrors.MsgMissingCredentials)
	}
	if utf8.RuneCountInString(req.Password) < domain.MinPasswordLength {
		return domain.RegisterInput{}, invalid(apierrors.MsgPasswordTooShort)
	}
	if len(req.Password) > domain.MaxPasswordBytes {
		return domain.RegisterInput{}, invalid(apierrors.MsgPasswordTooLong)
	}
	if err := checkEmail(email); err != nil {
		return domain.RegisterInput{}, err
	}
	if err := checkOptionalText(req.Name, nameRule, apierrors.MsgNameTooLong); err != nil {
		return domain.RegisterInput{}, err
	}

	return domain.RegisterInput{
		Email:    email,
		Password: req.Password,
		Name:     req.Name,
	}, nil
}

func BuildCredentials(req dto.LoginRequest) (domain.Credentials, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return domain.Credentials{}, invalid(apierrors.MsgMissingCredentials)
	}

	return domain.Credentials{
		Email:    email,
		Password: req.Password,
	}, nil
}
