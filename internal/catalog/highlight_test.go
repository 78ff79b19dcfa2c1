package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords KeywordSet
		want     []Segment
	}{
		{
			name:     "plain text only",
			text:     "nothing to see here",
			keywords: DefaultKeywords,
			want:     []Segment{{Text: "nothing to see here"}},
		},
		{
			name:     "keyword in the middle",
			text:     "Built on AWS with care",
			keywords: DefaultKeywords,
			want: []Segment{
				{Text: "Built on "},
				{Text: "AWS", Keyword: true},
				{Text: " with care"},
			},
		},
		{
			name:     "case of the text is kept",
			text:     "kafka and KAFKA",
			keywords: DefaultKeywords,
			want: []Segment{
				{Text: "kafka", Keyword: true},
				{Text: " and "},
				{Text: "KAFKA", Keyword: true},
			},
		},
		{
			name:     "longest keyword wins over a shorter prefix",
			text:     "Node.js services",
			keywords: NewKeywordSet("Node", "Node.js"),
			want: []Segment{
				{Text: "Node.js", Keyword: true},
				{Text: " services"},
			},
		},
		{
			name:     "shorter keyword still matches alone",
			text:     "Node workers",
			keywords: DefaultKeywords,
			want: []Segment{
				{Text: "Node", Keyword: true},
				{Text: " workers"},
			},
		},
		{
			name:     "first match wins on overlap",
			text:     "abcd",
			keywords: NewKeywordSet("abc", "bcd"),
			want: []Segment{
				{Text: "abc", Keyword: true},
				{Text: "d"},
			},
		},
		{
			name:     "adjacent keywords",
			text:     "SQSSNS",
			keywords: DefaultKeywords,
			want: []Segment{
				{Text: "SQS", Keyword: true},
				{Text: "SNS", Keyword: true},
			},
		},
		{
			name:     "no word boundary required",
			text:     "Reactive",
			keywords: DefaultKeywords,
			want: []Segment{
				{Text: "React", Keyword: true},
				{Text: "ive"},
			},
		},
		{
			name:     "pattern characters are literal",
			text:     "a+b (c|d) [x] a.b",
			keywords: NewKeywordSet("a+b", "(c|d)", "[x]", ".*"),
			want: []Segment{
				{Text: "a+b", Keyword: true},
				{Text: " "},
				{Text: "(c|d)", Keyword: true},
				{Text: " "},
				{Text: "[x]", Keyword: true},
				{Text: " a.b"},
			},
		},
		{
			name:     "multibyte text around keywords",
			text:     "café → React ✓",
			keywords: DefaultKeywords,
			want: []Segment{
				{Text: "café → "},
				{Text: "React", Keyword: true},
				{Text: " ✓"},
			},
		},
		{
			name:     "empty keyword set",
			text:     "React",
			keywords: NewKeywordSet(),
			want:     []Segment{{Text: "React"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.text, tt.keywords)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.text, Join(got))
		})
	}
}

func TestHighlight_EmptyText(t *testing.T) {
	require.Empty(t, Highlight("", DefaultKeywords))
	require.Empty(t, Highlight("", NewKeywordSet()))
}

func TestHighlight_RoundTrip(t *testing.T) {
	texts := []string{
		"Led a GenAI pilot on AWS Lambda with EventBridge, SQS and SNS fan-out.",
		"typescript, TYPESCRIPT, TypeScript and Typescript",
		"MongoDB→MySQL→PostgreSQL migration",
		"\x00\xff broken utf8 React",
		"tRPC over Fastify over Node.js over Node",
		"   ",
	}

	for _, text := range texts {
		segments := Highlight(text, DefaultKeywords)
		require.Equal(t, text, Join(segments))
		for i := 1; i < len(segments); i++ {
			require.False(t, !segments[i].Keyword && !segments[i-1].Keyword, "plain segments must be merged")
		}
	}
}

func TestNewKeywordSet(t *testing.T) {
	set := NewKeywordSet("Node", "", "node", "Node.js", "AWS")

	require.Equal(t, 3, set.Len())
	require.Equal(t, []string{"Node.js", "Node", "AWS"}, set.Words())
	require.True(t, set.Contains("NODE"))
	require.False(t, set.Contains("Deno"))
}

func TestDefaultKeywords(t *testing.T) {
	require.Equal(t, 18, DefaultKeywords.Len())
	require.True(t, DefaultKeywords.Contains("typescript"))
	require.True(t, DefaultKeywords.Contains("genai"))
}
