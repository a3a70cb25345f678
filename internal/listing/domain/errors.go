package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrTooManyImages    = fmt.Errorf("a listing can have at most %d images", MaxListingImages)
	ErrAlreadyFavorited = errors.New("listing is already favorited by this user")
	ErrNotFavorited     = errors.New("favorite not found")
	ErrForbidden        = errors.New("user not authorized to perform this action")
)

// ValidationError reports a missing or malformed field in a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
