package domain

import (
	"fmt"

	appErrors "orgsetup/internal/errors"
)

func validationFailed(verr ValidationError) error {
	return appErrors.New(appErrors.CodeValidationFailed, verr.Message(), verr)
}

func validatorFailure(err error) error {
	return appErrors.New(appErrors.CodeValidationFailed, fmt.Sprintf("validate form: %v", err), err)
}
