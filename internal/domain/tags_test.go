package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name   string
		title  string
		expect []string
	}{
		{"no keywords", "Fix login bug", nil},
		{"single keyword", "Refactor backend service", []string{"backend"}},
		{"case insensitive", "Update API Docs", []string{"api", "docs"}},
		{"vocabulary order", "docs for the backend api", []string{"backend", "api", "docs"}},
		{"substring match", "Add documentation", []string{"docs", "documentation"}},
		{"security and auth", "Harden auth flow for security review", []string{"auth", "security"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, c.Classify(tt.title))
		})
	}
}

func TestKeywordClassifier_CustomVocabulary(t *testing.T) {
	c := NewKeywordClassifierWithVocabulary([]string{"infra", "billing"})

	assert.Equal(t, []string{"billing"}, c.Classify("Fix billing export"))
	assert.Nil(t, c.Classify("Update API docs"))
}
