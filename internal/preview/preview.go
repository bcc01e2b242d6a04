// Package preview builds short one-line snippets of library entries for
// listings.
package preview

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
	"golang.org/x/net/html"

	"twm/internal/generator"
)

// DefaultMaxRunes is the snippet length used by listings.
const DefaultMaxRunes = 80

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
)

// germanAbbreviations are stored the way the tokenizer compares them:
// lower case, without the final period.
var germanAbbreviations = []string{
	"z.b", "bzw", "usw", "ca", "d.h", "u.a", "evtl", "ggf", "inkl", "vgl",
	"nr", "dr", "prof", "str", "bspw", "etc", "u.s.w", "s", "mio", "mrd",
}

// sentenceTokenizer is the language-neutral punkt tokenizer seeded with
// German abbreviations; the bundled English training data splits German
// text at the wrong places.
func sentenceTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		training := sentences.NewStorage()
		for _, abbr := range germanAbbreviations {
			training.AbbrevTypes.Add(abbr)
		}
		tokenizer = sentences.NewSentenceTokenizer(training)
	})
	return tokenizer
}

// Snippet returns the first sentence of the payload's main text, with any
// markup removed, cut to maxRunes. Table payloads are summarized by their
// header row.
func Snippet(p generator.Payload, maxRunes int) string {
	if maxRunes <= 0 {
		maxRunes = DefaultMaxRunes
	}
	if t, ok := p.(generator.TablePayload); ok {
		return truncate(strings.Join(t.Headers, " | "), maxRunes)
	}
	text := PlainText(generator.PrimaryText(p))
	return truncate(FirstSentence(text), maxRunes)
}

// PlainText strips HTML markup from s and collapses whitespace. Text
// without markup is returned with whitespace collapsed.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if isSkipped(string(name)) {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkipped(string(name)) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isSkipped(tag string) bool {
	return tag == "script" || tag == "style"
}

// FirstSentence returns the first sentence of text, or text itself when no
// sentence boundary is found.
func FirstSentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	for _, s := range sentenceTokenizer().Tokenize(text) {
		if first := strings.TrimSpace(s.Text); first != "" {
			return first
		}
	}
	return text
}

func truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:maxRunes])) + "..."
}
