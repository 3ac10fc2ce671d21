package patentdump_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/patentdump"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \t\r\n  ", want: ""},
		{name: "already clean", input: "A method", want: "A method"},
		{name: "collapses mixed runs", input: "  A   method \n for   scoring\tlinks  ", want: "A method for scoring links"},
		{name: "carriage returns", input: "line one\r\nline two", want: "line one line two"},
		{name: "non-breaking space", input: "A\u00a0\u00a0widget", want: "A widget"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, patentdump.Normalize(tt.input))
		})
	}
}

func TestNormalize_NoWhitespaceRuns(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a \t\n b",
		"\n\n\nx\t\t\ty\r\rz  ",
		"one\vtwo\ffour",
		strings.Repeat(" \t", 50) + "end",
	}

	for _, in := range inputs {
		got := patentdump.Normalize(in)
		assert.NotContains(t, got, "  ")
		assert.NotContains(t, got, "\t")
		assert.NotContains(t, got, "\n")
		assert.Equal(t, strings.TrimSpace(got), got)
	}
}

func TestNormalizeAbstract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   \n\t", want: ""},
		{name: "label with colon", input: "Abstract: A widget is disclosed.", want: "A widget is disclosed."},
		{name: "label with hyphen", input: "Abstract - A widget.", want: "A widget."},
		{name: "label with newline", input: "\n  Abstract\n\n  A widget.\n", want: "A widget."},
		{name: "case insensitive", input: "ABSTRACT: A widget.", want: "A widget."},
		{name: "label only", input: "Abstract", want: ""},
		{name: "no label", input: "A   widget is disclosed.", want: "A widget is disclosed."},
		{name: "label not at start", input: "The Abstract: widget", want: "The Abstract: widget"},
		{name: "only first label removed", input: "Abstract: Abstract: x", want: "Abstract: x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, patentdump.NormalizeAbstract(tt.input))
		})
	}
}

func TestNormalizeAbstract_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Abstract: A widget is disclosed.",
		"  abstract -\tA gear train.  ",
		"A system without a label.",
		"Abstract",
	}

	for _, in := range inputs {
		once := patentdump.NormalizeAbstract(in)
		assert.Equal(t, once, patentdump.NormalizeAbstract(once), "input %q", in)
	}
}
