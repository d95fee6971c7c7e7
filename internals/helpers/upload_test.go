package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeKB(t *testing.T) {
	assert.Equal(t, int64(0), SizeKB(0))
	assert.Equal(t, int64(0), SizeKB(-10))
	assert.Equal(t, int64(1), SizeKB(1))
	assert.Equal(t, int64(1), SizeKB(1024))
	assert.Equal(t, int64(2), SizeKB(1025))
	assert.Equal(t, int64(100), SizeKB(102400))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "passeport.pdf", SanitizeFilename("passeport.pdf"))
	assert.Equal(t, "acte_de_naissance_2_.pdf", SanitizeFilename("acte de naissance (2).pdf"))
	assert.Equal(t, "photo_d_identite.jpg", SanitizeFilename("photo d'identité.jpg"))
	assert.Equal(t, "fichier", SanitizeFilename(""))
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10}

	meta := BuildPagination(35, p, 10)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)

	meta = BuildPagination(0, p, 0)
	assert.Equal(t, 0, meta.TotalPages)
}
