package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Keyword is a technology or product name emphasised in descriptions
type Keyword string

const (
	KeywordGenAI       Keyword = "GenAI"
	KeywordAWS         Keyword = "AWS"
	KeywordAppSync     Keyword = "AppSync"
	KeywordPostgreSQL  Keyword = "PostgreSQL"
	KeywordKafka       Keyword = "Kafka"
	KeywordServerless  Keyword = "Serverless"
	KeywordSQS         Keyword = "SQS"
	KeywordSNS         Keyword = "SNS"
	KeywordEventBridge Keyword = "EventBridge"
	KeywordLambda      Keyword = "Lambda"
	KeywordReact       Keyword = "React"
	KeywordFastify     Keyword = "Fastify"
	KeywordTRPC        Keyword = "tRPC"
	KeywordNodeJS      Keyword = "Node.js"
	KeywordNode        Keyword = "Node"
	KeywordMySQL       Keyword = "MySQL"
	KeywordMongoDB     Keyword = "MongoDB"
	KeywordTypeScript  Keyword = "TypeScript"
)

// DefaultKeywords is the keyword set used on the projects page
var DefaultKeywords = NewKeywordSet(
	string(KeywordGenAI),
	string(KeywordAWS),
	string(KeywordAppSync),
	string(KeywordPostgreSQL),
	string(KeywordKafka),
	string(KeywordServerless),
	string(KeywordSQS),
	string(KeywordSNS),
	string(KeywordEventBridge),
	string(KeywordLambda),
	string(KeywordReact),
	string(KeywordFastify),
	string(KeywordTRPC),
	string(KeywordNodeJS),
	string(KeywordNode),
	string(KeywordMySQL),
	string(KeywordMongoDB),
	string(KeywordTypeScript),
)

// KeywordSet is an immutable, case-insensitive set of keywords.
// Words are kept longest first so the scanner tries them in that order.
type KeywordSet struct {
	words []string
}

// NewKeywordSet builds a set from words. Empty words are dropped and words
// differing only in case collapse to the first one given.
func NewKeywordSet(words ...string) KeywordSet {
	seen := make(map[string]bool, len(words))
	var kept []string
	for _, w := range words {
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, w)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i]) > len(kept[j])
	})
	return KeywordSet{words: kept}
}

// Words returns the keywords, longest first
func (s KeywordSet) Words() []string {
	return append([]string(nil), s.words...)
}

// Len returns the number of keywords
func (s KeywordSet) Len() int {
	return len(s.words)
}

// Contains reports whether word is in the set, ignoring case
func (s KeywordSet) Contains(word string) bool {
	for _, w := range s.words {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// matchAt returns the byte length of the longest keyword starting at text[i:], or 0.
func (s KeywordSet) matchAt(text string, i int) int {
	rest := text[i:]
	for _, w := range s.words {
		if len(w) <= len(rest) && strings.EqualFold(rest[:len(w)], w) {
			return len(w)
		}
	}
	return 0
}

// Segment is a run of description text, flagged when it is a keyword
type Segment struct {
	Text    string `json:"text"`
	Keyword bool   `json:"keyword"`
}

// Highlight splits text into plain and keyword segments in one left to right
// pass. At each position the longest matching keyword wins and scanning resumes
// after it, so matches never overlap. Keywords are compared literally, ignoring
// case, and the original casing of text is kept. Joining the segment texts
// gives back text exactly.
func Highlight(text string, keywords KeywordSet) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	plainStart := 0
	i := 0
	for i < len(text) {
		if n := keywords.matchAt(text, i); n > 0 {
			if plainStart < i {
				segments = append(segments, Segment{Text: text[plainStart:i]})
			}
			segments = append(segments, Segment{Text: text[i : i+n], Keyword: true})
			i += n
			plainStart = i
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if plainStart < len(text) {
		segments = append(segments, Segment{Text: text[plainStart:]})
	}

	return segments
}

// Join concatenates the text of segments
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
