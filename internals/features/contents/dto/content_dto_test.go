package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "journee-portes-ouvertes", Slugify("Journee Portes Ouvertes"))
	assert.Equal(t, "visa-2025-nouveaux-tarifs", Slugify("  Visa 2025 : nouveaux tarifs !"))
	assert.Equal(t, "", Slugify("???"))
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Nil(t, SplitTags("   "))
	assert.Equal(t, []string{"visa", "tarifs"}, SplitTags("visa, tarifs"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitTags(" a ,b,, c "))
}
