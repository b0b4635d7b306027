package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	title    string
	category string
}

func (i item) RefTitle() string    { return i.title }
func (i item) RefCategory() string { return i.category }

func TestMatchReferences(t *testing.T) {
	corpus := []item{
		{title: "Background & Significance", category: "Content Generation"},
		{title: "Specific Aims Generator", category: "Content Generation"},
		{title: "Budget Spreadsheet", category: "BACKGROUND research"},
		{title: "Reviewer Simulation", category: "Refinement"},
	}

	tests := []struct {
		name   string
		tokens []string
		want   []item
	}{
		{
			name:   "title or category, case insensitive",
			tokens: []string{"background"},
			want:   []item{corpus[0], corpus[2]},
		},
		{
			name:   "any token matches",
			tokens: []string{"aims", "refine"},
			want:   []item{corpus[1], corpus[3]},
		},
		{
			name:   "item matched by two tokens appears once",
			tokens: []string{"budget", "spreadsheet"},
			want:   []item{corpus[2]},
		},
		{
			name:   "no match",
			tokens: []string{"telescope"},
			want:   []item{},
		},
		{
			name:   "blank tokens ignored",
			tokens: []string{"", "  "},
			want:   []item{},
		},
		{
			name:   "nil tokens",
			tokens: nil,
			want:   []item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchReferences(tt.tokens, corpus)
			assert.Equal(t, tt.want, got)
		})
	}
}
