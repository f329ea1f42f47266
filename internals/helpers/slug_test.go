// file: internals/helpers/slug_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "belajar-rest-api-dengan-go", GenerateSlug("Belajar REST API dengan Go"))
	assert.Equal(t, "todo-cli", GenerateSlug("  Todo CLI!!  "))
	assert.Equal(t, "crud-postgresql", GenerateSlug("CRUD + PostgreSQL"))
	assert.Equal(t, "", GenerateSlug("!!!"))
}

func TestGenerateSlug_CollapsesDashes(t *testing.T) {
	assert.Equal(t, "a-b-c", GenerateSlug("a -- b___c"))
	assert.Equal(t, "angka-123", GenerateSlug("Angka 123"))
}
