package ies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferredLangs(t *testing.T) {
	tests := []struct {
		siteLang string
		want     []string
	}{
		{"", []string{"en", "int"}},
		{"en", []string{"en", "int"}},
		{"fr", []string{"fr", "en", "int"}},
		{"int", []string{"int", "en"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PreferredLangs(tt.siteLang), "sitelang=%q", tt.siteLang)
	}
}

func TestLangRanker(t *testing.T) {
	rank := LangRanker([]string{"en", "fr"})

	assert.Greater(t, rank("en"), rank("fr"))
	assert.Greater(t, rank("fr"), rank("de"))
	assert.Equal(t, -1, rank("de"))
	assert.Equal(t, -1, rank(""))
}

func TestSelectByLang(t *testing.T) {
	candidates := map[string]string{
		"fr":  "titre",
		"int": "original",
	}

	got, ok := SelectByLang(candidates, []string{"en", "fr", "int"})
	assert.True(t, ok)
	assert.Equal(t, "titre", got)

	got, ok = SelectByLang(candidates, []string{"en", "int"})
	assert.True(t, ok)
	assert.Equal(t, "original", got)

	_, ok = SelectByLang(candidates, []string{"de"})
	assert.False(t, ok)

	// empty candidates never match
	_, ok = SelectByLang(map[string]string{"en": ""}, []string{"en"})
	assert.False(t, ok)
}
