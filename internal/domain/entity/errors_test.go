package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "headline", Message: "is required"}

	assert.Equal(t, "invalid headline: is required", err.Error())
}
