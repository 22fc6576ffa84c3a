package dto

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("errRecordNotFound")
	ErrUnknownField = errors.New("errUnknownField")
)

func unknownField(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}
