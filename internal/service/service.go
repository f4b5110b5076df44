package service

import (
	"errors"
	"fmt"

	"go-erp-dashboard/pkg/validator"
)

// ErrNotFound is returned when an id does not exist in its collection.
var ErrNotFound = errors.New("record not found")

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}
