// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

// toAppError maps repository sentinels to their domain errors. Anything that
// is not already an AppError becomes an internal error.
func toAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrServiceNotFound):
		return domainerrors.ErrServiceNotFound
	case errors.Is(err, repository.ErrSubCategoryNotFound):
		return domainerrors.ErrSubCategoryNotFound
	default:
		return domainerrors.NewInternalError(err)
	}
}
