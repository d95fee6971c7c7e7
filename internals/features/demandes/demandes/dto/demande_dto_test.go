package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeJSONBlock(t *testing.T) {
	// Bloc vide ou null → rien à traiter.
	out, err := NormalizeJSONBlock(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = NormalizeJSONBlock(json.RawMessage("  null "))
	require.NoError(t, err)
	assert.Nil(t, out)

	// Objet déjà parsé → renvoyé tel quel.
	out, err = NormalizeJSONBlock(json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(out))

	// Chaîne JSON (cas multipart) → contenu interne.
	out, err = NormalizeJSONBlock(json.RawMessage(`"{\"a\":1}"`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(out))

	// Chaîne mal terminée → erreur.
	_, err = NormalizeJSONBlock(json.RawMessage(`"{\"a\":1}`))
	assert.Error(t, err)
}
