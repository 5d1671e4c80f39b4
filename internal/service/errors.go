package service

import (
	"errors"
	"fmt"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/repository"
)

// repoErr translates repository sentinels into apperrors kinds so handlers
// can map them to responses.
func repoErr(op string, err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound(op, "%s not found", what)
	case errors.Is(err, repository.ErrConflict):
		return apperrors.Conflict(op, "%s was changed concurrently", what)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
