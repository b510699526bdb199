// Package stats implements the text-statistics plugin. It is a pure
// function of the payload: it computes counts, reading time and a
// readability score, stores them in metadata, and leaves the payload
// untouched.
package stats

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/words"
)

// Name is the registered plugin name.
const Name = "text-statistics"

// MetaKey is the metadata key the computed statistics are stored under.
const MetaKey = "textStatistics"

// defaultWPM is an average adult reading speed.
const defaultWPM = 250

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	paragraphRe  = regexp.MustCompile(`\n\n+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+\s`)

	// Suffix patterns that mark technical or specialized vocabulary.
	technicalRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)[a-z]+ology$`),
		regexp.MustCompile(`(?i)[a-z]+ization$`),
		regexp.MustCompile(`(?i)[a-z]+icism$`),
		regexp.MustCompile(`(?i)[a-z]+istic$`),
		regexp.MustCompile(`(?i)[a-z]+esis$`),
		regexp.MustCompile(`(?i)[a-z]+itis$`),
		regexp.MustCompile(`(?i)[a-z]+omy$`),
		regexp.MustCompile(`(?i)[a-z]+lyze$`),
	}

	syllableTrimRe  = regexp.MustCompile(`([^laeiouy]es|ed|[^laeiouy]e)$`)
	syllableLeadYRe = regexp.MustCompile(`^y`)
	vowelGroupRe    = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// Plugin computes text statistics over the payload.
type Plugin struct {
	averageWPM int
	lists      *words.Lists
}

// New creates a text-statistics plugin with the built-in fallback
// vocabulary and the default reading speed.
func New() *Plugin {
	return &Plugin{averageWPM: defaultWPM, lists: words.Fallback()}
}

// WithLists replaces the vocabulary used for the profile.
func (p *Plugin) WithLists(l *words.Lists) *Plugin {
	if l != nil {
		p.lists = l
	}
	return p
}

// Name returns the plugin name.
func (p *Plugin) Name() string { return Name }

// Configure applies plugin options: averageWPM (reading speed) and
// wordListFile (path to a JSON CEFR vocabulary).
func (p *Plugin) Configure(options map[string]any) error {
	if wpm := plugin.IntOption(options, "averageWPM", p.averageWPM); wpm > 0 {
		p.averageWPM = wpm
	}
	if path := plugin.StringOption(options, "wordListFile", ""); path != "" {
		l, err := words.LoadFile(path)
		if err != nil {
			return err
		}
		p.lists = l
	}
	return nil
}

// Process computes the statistics and attaches them under MetaKey. The
// payload passes through unchanged.
func (p *Plugin) Process(_ context.Context, item plugin.ContentItem, sink plugin.Sink) (plugin.ContentItem, error) {
	statistics := p.analyze(item.Payload)

	plugin.Emit(sink, plugin.StructuredEvent(map[string]any{
		"statistics": statistics,
		"message": fmt.Sprintf("Analysis complete: %v words, Reading level: %v (Gunning Fog Index)",
			statistics["wordCount"], statistics["readabilityScore"]),
	}))

	return item.WithMeta(map[string]any{MetaKey: statistics}), nil
}

func (p *Plugin) analyze(content string) map[string]any {
	ws := splitWords(content)
	wordCount := len(ws)
	paragraphCount := countNonBlank(paragraphRe.Split(content, -1))
	sentenceCount := countNonBlank(sentenceRe.Split(content, -1))

	stats := map[string]any{
		"wordCount":      wordCount,
		"paragraphCount": paragraphCount,
		"sentenceCount":  sentenceCount,
	}
	if wordCount == 0 {
		stats["readingTimeMinutes"] = 0
		stats["averageWordLength"] = "0.0"
		stats["wordsPerSentence"] = "0.0"
		stats["readabilityScore"] = "0.0"
		stats["vocabularyProfile"] = p.vocabularyProfile(nil, 0)
		return stats
	}

	stats["readingTimeMinutes"] = int(math.Ceil(float64(wordCount) / float64(p.averageWPM)))

	var totalLen, complexWords int
	for _, w := range ws {
		totalLen += len(w)
		if countSyllables(w) >= 3 {
			complexWords++
		}
	}
	stats["averageWordLength"] = fmt.Sprintf("%.1f", float64(totalLen)/float64(wordCount))

	// Gunning Fog needs at least one sentence.
	perSentence := float64(wordCount)
	if sentenceCount > 0 {
		perSentence = float64(wordCount) / float64(sentenceCount)
	}
	fog := 0.4 * (perSentence + 100*float64(complexWords)/float64(wordCount))
	stats["wordsPerSentence"] = fmt.Sprintf("%.1f", perSentence)
	stats["readabilityScore"] = fmt.Sprintf("%.1f", fog)

	stats["vocabularyProfile"] = p.vocabularyProfile(ws, wordCount)
	return stats
}

// vocabularyProfile buckets words into basic (a1/a2), academic (b1/b2),
// technical and other.
func (p *Plugin) vocabularyProfile(ws []string, total int) map[string]any {
	var basic, academic, technical, other int
	for _, w := range ws {
		switch p.lists.Level(w) {
		case words.LevelA1, words.LevelA2:
			basic++
		case words.LevelB1, words.LevelB2:
			academic++
		default:
			if isTechnical(w) {
				technical++
			} else {
				other++
			}
		}
	}

	bucket := func(count int) map[string]any {
		pct := "0.0"
		if total > 0 {
			pct = fmt.Sprintf("%.1f", float64(count)/float64(total)*100)
		}
		return map[string]any{"count": count, "percentage": pct}
	}
	return map[string]any{
		"basic":     bucket(basic),
		"academic":  bucket(academic),
		"technical": bucket(technical),
		"other":     bucket(other),
	}
}

// splitWords tokenizes on whitespace and lowercases, keeping letters,
// apostrophes and hyphens.
func splitWords(content string) []string {
	fields := whitespaceRe.Split(content, -1)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		out = append(out, strings.Map(keepWordChar, strings.ToLower(f)))
	}
	return out
}

func keepWordChar(r rune) rune {
	if (r >= 'a' && r <= 'z') || r == '\'' || r == '-' {
		return r
	}
	return -1
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

func isTechnical(word string) bool {
	for _, re := range technicalRes {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// countSyllables estimates syllables by counting vowel groups after
// trimming silent endings. Words of three letters or fewer count one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if len(word) <= 3 {
		return 1
	}
	word = syllableTrimRe.ReplaceAllString(word, "")
	word = syllableLeadYRe.ReplaceAllString(word, "")
	if n := len(vowelGroupRe.FindAllString(word, -1)); n > 0 {
		return n
	}
	return 1
}
