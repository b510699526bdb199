// Package wordlevel implements the word-level-analyzer plugin. It tags
// every word in the payload with its CEFR band and reports aggregate
// difficulty statistics.
package wordlevel

import (
	"context"
	"fmt"
	"strings"

	"github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/words"
)

// Name is the registered plugin name.
const Name = "word-level-analyzer"

// MetaKey is the metadata key the analysis is stored under.
const MetaKey = "wordLevels"

// Output formats.
const (
	FormatInline = "inline" // rewrite payload as "word [A1] word [B2] ..."
	FormatJSON   = "json"   // leave payload alone, analysis in metadata only
)

// Plugin analyzes the CEFR difficulty of words in the payload.
type Plugin struct {
	format string
	lists  *words.Lists
}

// New creates a word-level analyzer with the built-in fallback
// vocabulary.
func New() *Plugin {
	return &Plugin{format: FormatInline, lists: words.Fallback()}
}

// WithLists replaces the vocabulary.
func (p *Plugin) WithLists(l *words.Lists) *Plugin {
	if l != nil {
		p.lists = l
	}
	return p
}

// Name returns the plugin name.
func (p *Plugin) Name() string { return Name }

// Configure applies plugin options: outputFormat ("inline" or "json")
// and wordListFile (path to a JSON CEFR vocabulary).
func (p *Plugin) Configure(options map[string]any) error {
	format := plugin.StringOption(options, "outputFormat", p.format)
	if format != FormatInline && format != FormatJSON {
		return errors.PluginConfiguration(Name, fmt.Sprintf("unknown output format %q", format))
	}
	p.format = format

	if path := plugin.StringOption(options, "wordListFile", ""); path != "" {
		l, err := words.LoadFile(path)
		if err != nil {
			return err
		}
		p.lists = l
	}
	return nil
}

// wordLevel pairs a surface word with its CEFR band.
type wordLevel struct {
	Word  string `json:"word"`
	Level string `json:"level"`
}

// Process tags payload words with CEFR bands. In inline format the
// payload is rewritten with bracketed level annotations; in json format
// it passes through and only metadata changes.
func (p *Plugin) Process(_ context.Context, item plugin.ContentItem, sink plugin.Sink) (plugin.ContentItem, error) {
	levels := p.analyze(item.Payload)
	statistics := calculateStatistics(levels)

	out := item.WithMeta(map[string]any{MetaKey: map[string]any{
		"words":      levels,
		"statistics": statistics,
	}})
	if p.format == FormatInline {
		out.Payload = formatInline(levels)
	}

	plugin.Emit(sink, plugin.StructuredEvent(map[string]any{
		"wordLevels": levels,
		"statistics": statistics,
	}))
	return out, nil
}

func (p *Plugin) analyze(text string) []wordLevel {
	tokens := words.Extract(text)
	out := make([]wordLevel, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, wordLevel{Word: tok, Level: p.lists.Level(tok)})
	}
	return out
}

func formatInline(levels []wordLevel) string {
	var b strings.Builder
	for i, wl := range levels {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s [%s]", wl.Word, strings.ToUpper(wl.Level))
	}
	return b.String()
}

// calculateStatistics counts words per band and groups them into
// elementary (a1+a2), intermediate (b1+b2) and advanced (c1+c2).
func calculateStatistics(levels []wordLevel) map[string]any {
	counts := map[string]int{}
	for _, lv := range words.Levels {
		counts[lv] = 0
	}
	counts[words.LevelUnknown] = 0
	for _, wl := range levels {
		counts[wl.Level]++
	}

	total := len(levels)
	pct := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / float64(total) * 100
	}

	percentages := make(map[string]float64, len(counts))
	for lv, n := range counts {
		percentages[lv] = pct(n)
	}

	elementary := counts[words.LevelA1] + counts[words.LevelA2]
	intermediate := counts[words.LevelB1] + counts[words.LevelB2]
	advanced := counts[words.LevelC1] + counts[words.LevelC2]

	return map[string]any{
		"counts":      counts,
		"percentages": percentages,
		"totalWords":  total,
		"groupedCounts": map[string]int{
			"elementary":   elementary,
			"intermediate": intermediate,
			"advanced":     advanced,
			"unknown":      counts[words.LevelUnknown],
		},
		"groupedPercentages": map[string]float64{
			"elementary":   pct(elementary),
			"intermediate": pct(intermediate),
			"advanced":     pct(advanced),
			"unknown":      pct(counts[words.LevelUnknown]),
		},
	}
}
