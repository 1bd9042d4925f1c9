package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn     = errors.New("missing column")
	ErrStorageUnwritable = errors.New("storage unwritable")
	ErrNoMatchingRows    = errors.New("no matching rows")
	ErrNotFound          = errors.New("dashboard not found")
)

// MissingColumnError names the dataset and header that failed validation.
type MissingColumnError struct {
	Dataset string
	Column  string
}

func (e *MissingColumnError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %q", e.Dataset, ErrMissingColumn.Error(), e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
