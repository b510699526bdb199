package words

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	got := Extract("Well, the self-driving car cost $40,000 in 2024!")
	want := []string{"Well", "the", "self", "driving", "car", "cost", "in"}
	if len(got) != len(want) {
		t.Fatalf("Extract = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Extract[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer()
	cases := []struct {
		in, want string
	}{
		// contractions
		{"don't", "do not"},
		{"won't", "will not"},
		{"It's", "it is"},
		// abbreviations
		{"Dr.", "doctor"},
		{"govt.", "government"},
		{"nasa", "national aeronautics and space administration"},
		// slang
		{"lemme", "let me"},
		{"thru", "through"},
		// possessives
		{"dog's", "dog"},
		// hyphenated compounds
		{"self-driving", "self driving"},
		// plurals
		{"puppies", "puppy"},
		{"boys", "boy"},
		{"glasses", "glass"},
		{"boxes", "box"},
		{"wives", "wife"},
		{"children", "child"},
		{"mice", "mouse"},
		{"feet", "foot"},
		{"women", "woman"},
		{"people", "person"},
		{"cats", "cat"},
		// verb forms
		{"studied", "study"},
		{"asking", "ask"},
		{"jumped", "jump"},
		{"went", "go"},
		{"was", "be"},
		{"has", "have"},
		// comparatives
		{"happier", "happy"},
		{"longest", "long"},
		{"better", "good"},
		{"worst", "bad"},
		// passthrough
		{"word", "word"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := n.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeAllSkipsEmpty(t *testing.T) {
	n := NewNormalizer()
	got := n.NormalizeAll([]string{"cats", "", "don't"})
	if len(got) != 2 || got[0] != "cat" || got[1] != "do not" {
		t.Errorf("NormalizeAll = %q", got)
	}
}

func TestLoadFlatEntries(t *testing.T) {
	l, err := Load(strings.NewReader(`[
		{"word": "house", "level": "A1"},
		{"word": "paradigm", "level": "C2"},
		{"word": "", "level": "A1"},
		{"word": "bogus", "level": "Z9"}
	]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := l.Level("house"); got != LevelA1 {
		t.Errorf("Level(house) = %q", got)
	}
	if got := l.Level("paradigm"); got != LevelC2 {
		t.Errorf("Level(paradigm) = %q", got)
	}
	if got := l.Level("bogus"); got != LevelUnknown {
		t.Errorf("Level(bogus) = %q, want unknown", got)
	}
}

func TestLoadNestedEntries(t *testing.T) {
	l, err := Load(strings.NewReader(`[
		{"value": {"word": "culture", "level": "B1"}}
	]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := l.Level("culture"); got != LevelB1 {
		t.Errorf("Level(culture) = %q", got)
	}
}

func TestLevelResolvesInflectedForms(t *testing.T) {
	l, err := Load(strings.NewReader(`[{"word": "house", "level": "A1"}]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := l.Level("houses"); got != LevelA1 {
		t.Errorf("Level(houses) = %q, want a1", got)
	}
	if got := l.Level("Houses"); got != LevelA1 {
		t.Errorf("Level(Houses) = %q, want a1", got)
	}
}

func TestLoadBadJSON(t *testing.T) {
	if _, err := Load(strings.NewReader(`{not json`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFallback(t *testing.T) {
	l := Fallback()
	if l.Size() == 0 {
		t.Fatal("fallback vocabulary is empty")
	}
	if got := l.Level("hello"); got != LevelA1 {
		t.Errorf("Level(hello) = %q", got)
	}
	if got := l.Level("implausibility"); got != LevelUnknown {
		t.Errorf("Level(implausibility) = %q", got)
	}
}
