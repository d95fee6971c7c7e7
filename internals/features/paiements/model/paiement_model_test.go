package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMethod(t *testing.T) {
	for _, m := range AllMethods {
		assert.True(t, IsValidMethod(m), m)
	}
	assert.False(t, IsValidMethod("CHEQUE"))
	assert.False(t, IsValidMethod("cash"))
	assert.False(t, IsValidMethod(""))
}
