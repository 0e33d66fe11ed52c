package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/platform/apierr"
)

// mapError translates idgen and storage errors into API errors. Errors that are
// already API errors or are unknown pass through unchanged.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if _, ok := apierr.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, idgen.ErrInvalidInput):
		return apierr.InvalidInput(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierr.NotFound(fmt.Errorf("%s not found", what))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierr.Conflict(fmt.Errorf("%s already exists", what))
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// requireIDs rejects blank entity references taken from a request body.
func requireIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return apierr.InvalidInput(fmt.Errorf("%s is required", pairs[i]))
		}
	}
	return nil
}
