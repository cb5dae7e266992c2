package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erp-pro/erp-pro-api/pkg/search"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cafe", search.Normalize("Café"))
	assert.Equal(t, "muqova", search.Normalize("MUQOVA"))
}

func TestContains_InsensibleAMayusculas(t *testing.T) {
	assert.True(t, search.Contains("Olma sharbati", "OLMA"))
	assert.True(t, search.Contains("Telefón", "telefon"))
	assert.False(t, search.Contains("Olma sharbati", "banan"))
}

func TestContains_NeedleVacia_CoincideTodo(t *testing.T) {
	assert.True(t, search.Contains("cualquier cosa", ""))
	assert.True(t, search.Contains("", ""))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, search.ContainsAny("998", "Aziza", "998901234567"))
	assert.False(t, search.ContainsAny("zzz", "Aziza", "998901234567"))
	assert.True(t, search.ContainsAny("", "lo", "que", "sea"))
}
