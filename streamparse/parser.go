package streamparse

import (
	"regexp"
	"strings"
)

// Field markers emitted by the summarization prompt. Markers are
// guaranteed not to appear mid-field, only at line starts.
const (
	MarkerSummary  = "# Shortened"
	MarkerKeywords = "# Keywords"
)

var (
	// Summary body: everything after the marker line up to the next
	// marker or the end of the block.
	summaryRe = regexp.MustCompile(`(?ms)^# Shortened[ \t]*\n?(.*?)(?:^# Keywords[ \t]*$|\z)`)
	// Keywords section: the run of dash-prefixed lines after the marker.
	keywordsRe = regexp.MustCompile(`(?m)^# Keywords[ \t]*\n((?:[ \t]*-[ \t]*.*\n?)*)`)
	dashLineRe = regexp.MustCompile(`(?m)^[ \t]*-[ \t]*(.*)$`)
)

// Record is the structured result for one source unit. Summary and
// Keywords are monotonically replaced, never partially concatenated:
// a newer complete parse always overwrites the older value whole.
type Record struct {
	SourceKey string   `json:"sourceKey"`
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
}

// state is the per-source-unit parse state: the record under
// construction and the residual tail not yet promoted to a block.
type state struct {
	record   *Record
	residual string
}

// Parser turns arbitrarily-cut fragments into Records, one per source
// key, in the order keys were first seen. A Parser is owned by the
// single stream-processing loop that feeds it; it is not safe for
// concurrent use.
type Parser struct {
	order  []string
	states map[string]*state
}

// NewParser creates an empty Parser.
func NewParser() *Parser {
	return &Parser{states: make(map[string]*state)}
}

// Feed appends fragment to the source unit's buffer and parses any
// newly completed blocks. It returns true iff the summary or keywords
// of that record hold a different value after the call. An empty
// fragment is a no-op.
func (p *Parser) Feed(sourceKey, fragment string) bool {
	if fragment == "" {
		return false
	}

	st, ok := p.states[sourceKey]
	if !ok {
		st = &state{record: &Record{SourceKey: sourceKey}}
		p.states[sourceKey] = st
		p.order = append(p.order, sourceKey)
	}

	changed := false

	// A fragment opening with the summary marker starts a new block even
	// without a preceding paragraph break: markers never appear
	// mid-field, so whatever is buffered is complete.
	if st.residual != "" && strings.HasPrefix(fragment, MarkerSummary) {
		if parseBlock(st.record, st.residual) {
			changed = true
		}
		st.residual = ""
	}

	buf := st.residual + fragment
	blocks := strings.Split(buf, "\n\n")

	// The last split element is the potentially incomplete tail; it is
	// held back until a later fragment closes it.
	st.residual = blocks[len(blocks)-1]
	for _, block := range blocks[:len(blocks)-1] {
		if parseBlock(st.record, block) {
			changed = true
		}
	}

	return changed
}

// Records returns the records in the order their source keys were
// first seen. The returned records are live; callers that retain them
// past the stream's lifetime should copy what they need.
func (p *Parser) Records() []*Record {
	out := make([]*Record, 0, len(p.order))
	for _, key := range p.order {
		out = append(out, p.states[key].record)
	}
	return out
}

// Record returns the record for sourceKey, or nil if the key has never
// been fed.
func (p *Parser) Record(sourceKey string) *Record {
	if st, ok := p.states[sourceKey]; ok {
		return st.record
	}
	return nil
}

// parseBlock matches one completed block against the field patterns and
// overwrites rec's fields for every non-empty match, later matches
// winning. It reports whether any field changed value. Blocks matching
// neither pattern are stray prose and are dropped silently.
func parseBlock(rec *Record, block string) bool {
	changed := false

	for _, m := range summaryRe.FindAllStringSubmatch(block, -1) {
		body := strings.TrimSpace(m[1])
		if body != "" && body != rec.Summary {
			rec.Summary = body
			changed = true
		}
	}

	for _, m := range keywordsRe.FindAllStringSubmatch(block, -1) {
		keywords := parseDashList(m[1])
		if len(keywords) > 0 && !equalStrings(keywords, rec.Keywords) {
			rec.Keywords = keywords
			changed = true
		}
	}

	return changed
}

func parseDashList(section string) []string {
	var out []string
	for _, m := range dashLineRe.FindAllStringSubmatch(section, -1) {
		if item := strings.TrimSpace(m[1]); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
