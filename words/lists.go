package words

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball"
)

// CEFR bands from easiest to hardest. LevelUnknown marks words missing
// from the loaded vocabulary.
const (
	LevelA1      = "a1"
	LevelA2      = "a2"
	LevelB1      = "b1"
	LevelB2      = "b2"
	LevelC1      = "c1"
	LevelC2      = "c2"
	LevelUnknown = "unknown"
)

// Levels lists the known CEFR bands in ascending difficulty.
var Levels = []string{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// Lists is a loaded CEFR vocabulary. Lookup is by normalized word, so
// inflected forms resolve to their headword's band.
type Lists struct {
	norm   *Normalizer
	levels map[string]string
}

// entry is one vocabulary record. Oxford-style exports nest the record
// under a "value" key; flat exports carry word and level directly.
type entry struct {
	Word  string `json:"word"`
	Level string `json:"level"`
	Value *struct {
		Word  string `json:"word"`
		Level string `json:"level"`
	} `json:"value"`
}

// Load reads a JSON vocabulary list. Entries with an empty word or an
// unrecognized level are skipped. Existing entries win: load the
// primary vocabulary first, then supplements.
func Load(r io.Reader) (*Lists, error) {
	var entries []entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("words: decode vocabulary: %w", err)
	}

	l := newLists()
	for _, e := range entries {
		word, level := e.Word, e.Level
		if e.Value != nil {
			word, level = e.Value.Word, e.Value.Level
		}
		l.add(word, level)
	}
	return l, nil
}

// LoadFile reads a JSON vocabulary list from disk.
func LoadFile(path string) (*Lists, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open vocabulary: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return Load(f)
}

// Fallback returns a minimal built-in vocabulary for when no list file
// is available. Lookup still works, most words just come back unknown.
func Fallback() *Lists {
	l := newLists()
	for word, level := range map[string]string{
		"hello": LevelA1, "world": LevelA1,
		"simple": LevelA2, "basic": LevelA2,
		"intermediate": LevelB1, "progress": LevelB1,
		"advanced": LevelB2, "complex": LevelB2,
		"proficient": LevelC1, "master": LevelC1,
		"expert": LevelC2, "fluent": LevelC2,
	} {
		l.add(word, level)
	}
	return l
}

func newLists() *Lists {
	return &Lists{
		norm:   NewNormalizer(),
		levels: make(map[string]string),
	}
}

// add records a word under its surface, normalized and stemmed forms.
// The first level registered for a form is kept.
func (l *Lists) add(word, level string) {
	word = strings.ToLower(strings.TrimSpace(word))
	level = strings.ToLower(strings.TrimSpace(level))
	if word == "" || !validLevel(level) {
		return
	}
	for _, form := range []string{word, l.norm.Normalize(word), stem(word)} {
		if form == "" {
			continue
		}
		if _, ok := l.levels[form]; !ok {
			l.levels[form] = level
		}
	}
}

// Level returns the CEFR band for a word, or LevelUnknown. The surface
// form is tried first, then the normalized form, then the stem.
func (l *Lists) Level(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if lv, ok := l.levels[word]; ok {
		return lv
	}
	if lv, ok := l.levels[l.norm.Normalize(word)]; ok {
		return lv
	}
	if lv, ok := l.levels[stem(word)]; ok {
		return lv
	}
	return LevelUnknown
}

// stem reduces a word to its snowball stem, so inflected forms share a
// lookup key with their headword. Unstemable input maps to itself.
func stem(word string) string {
	s, err := snowball.Stem(word, "english", false)
	if err != nil || s == "" {
		return word
	}
	return s
}

// Size returns the number of distinct lookup forms.
func (l *Lists) Size() int { return len(l.levels) }

func validLevel(level string) bool {
	for _, lv := range Levels {
		if level == lv {
			return true
		}
	}
	return false
}
