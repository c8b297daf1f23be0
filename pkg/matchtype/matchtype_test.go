package matchtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"league":       League,
		"seriekamp":    League,
		" Seriekamp ":  League,
		"cup":          Cup,
		"cupkamp":      Cup,
		"friendly":     Friendly,
		"treningskamp": Friendly,
	}

	for raw, want := range cases {
		got, ok := Normalize(raw)
		assert.True(t, ok, "expected %q to be a known type", raw)
		assert.Equal(t, want, got)
	}
}

func TestNormalizeUnknown(t *testing.T) {
	_, ok := Normalize("turnering")
	assert.False(t, ok)
}

func TestSameAcrossLanguages(t *testing.T) {
	assert.True(t, Same("league", "seriekamp"))
	assert.True(t, Same("treningskamp", "friendly"))
	assert.False(t, Same("league", "cup"))
	assert.False(t, Same("seriekamp", "cupkamp"))
}

func TestSameUnknownFallsBackToExact(t *testing.T) {
	assert.True(t, Same("turnering", "Turnering"))
	assert.False(t, Same("turnering", "league"))
}
