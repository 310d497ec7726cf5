package inventory

import (
	"fmt"
	"strings"
)

// Field names reported by ValidationError.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldQuantity = "quantity"
)

// ValidationError represents a rejected field value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the writable fields of an item.
func Validate(name string, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: FieldName, Message: "name should not be empty"}
	}
	if quantity <= 0 {
		return ValidationError{Field: FieldQuantity, Message: "quantity should be greater than 0"}
	}
	return nil
}

// ValidateID checks an item identifier supplied by the operator.
func ValidateID(id int64) error {
	if id <= 0 {
		return ValidationError{Field: FieldID, Message: "ID should be greater than 0"}
	}
	return nil
}
