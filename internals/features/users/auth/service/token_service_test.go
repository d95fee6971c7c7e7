package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRefreshHash(t *testing.T) {
	h := computeRefreshHash("jeton", "secret")
	assert.Len(t, h, 64)
	assert.Equal(t, h, computeRefreshHash("jeton", "secret"))

	// Un autre jeton ou un autre secret donne une empreinte différente.
	assert.NotEqual(t, h, computeRefreshHash("jeton2", "secret"))
	assert.NotEqual(t, h, computeRefreshHash("jeton", "secret2"))
}
