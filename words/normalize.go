package words

import (
	"regexp"
	"strings"
)

// Normalizer folds inflected, contracted and informal word forms down
// to base forms. The zero value is not usable; call NewNormalizer.
type Normalizer struct {
	contractions  map[string]string
	abbreviations map[string]string
	slang         map[string]string
}

// NewNormalizer creates a Normalizer with the built-in expansion maps.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		contractions:  contractions,
		abbreviations: abbreviations,
		slang:         slang,
	}
}

var (
	wordRe        = regexp.MustCompile(`[a-zA-Z]+`)
	nonWordCharRe = regexp.MustCompile(`[^\w\s]`)
)

// Extract splits text into alphabetic words, dropping punctuation,
// numbers and hyphens.
func Extract(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// Normalize folds a single word to its base form: lowercases, expands
// contractions, abbreviations and slang, strips possessives, splits
// hyphenated compounds and undoes common inflections.
func (n *Normalizer) Normalize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}

	if exp, ok := n.abbreviations[word]; ok {
		word = exp
	} else if exp, ok := n.abbreviations[strings.TrimRight(word, ".")]; ok {
		word = exp
	}

	if exp, ok := n.contractions[word]; ok {
		word = exp
	}
	if exp, ok := n.slang[word]; ok {
		word = exp
	}

	// Possessives: writer's -> writer, writers' -> writers
	if strings.HasSuffix(word, "'s") {
		word = strings.TrimSuffix(word, "'s")
	}
	word = strings.TrimSuffix(word, "'")

	word = strings.ReplaceAll(word, "-", " ")

	// Expansions and compounds yield phrases; suffix rules only make
	// sense on single words.
	if !strings.Contains(word, " ") {
		word = n.normalizeInflection(word)
	}
	word = nonWordCharRe.ReplaceAllString(word, "")

	return strings.TrimSpace(word)
}

// NormalizeAll normalizes each word, skipping empties.
func (n *Normalizer) NormalizeAll(ws []string) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if w == "" {
			continue
		}
		out = append(out, n.Normalize(w))
	}
	return out
}

// normalizeInflection folds inflected forms to base forms. Irregular
// forms resolve through a direct lookup first so that suffix rules
// never mangle them (the general "s$" plural rule would turn "was"
// into "wa"). Then the suffix rule sets apply in order: plurals, verb
// tenses, comparatives. Within a set the first matching rule wins, and
// the first set that changes the word ends the search.
func (n *Normalizer) normalizeInflection(word string) string {
	if base, ok := irregulars[word]; ok {
		return base
	}
	for _, rules := range [][]inflectionRule{pluralRules, verbRules, comparativeRules} {
		for _, r := range rules {
			if r.re.MatchString(word) {
				if folded := r.re.ReplaceAllString(word, r.repl); folded != word {
					return folded
				}
				break
			}
		}
	}
	return word
}

type inflectionRule struct {
	re   *regexp.Regexp
	repl string
}

func rule(pattern, repl string) inflectionRule {
	return inflectionRule{re: regexp.MustCompile(pattern), repl: repl}
}

// irregulars maps irregular inflected forms straight to base forms.
var irregulars = map[string]string{
	// irregular plurals
	"children": "child",
	"oxen":     "ox",
	"mice":     "mouse",
	"lice":     "louse",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"men":      "man",
	"women":    "woman",
	"people":   "person",
	// irregular verbs
	"is": "be", "are": "be", "was": "be", "were": "be", "am": "be", "been": "be",
	"has": "have", "had": "have",
	"does": "do", "did": "do",
	"said": "say", "made": "make", "went": "go",
	"taken": "take", "took": "take",
	"gave": "give", "given": "give",
	"came": "come", "became": "become",
	"saw": "see", "seen": "see",
	"knew": "know", "known": "know",
	// irregular comparatives
	"better": "good", "best": "good",
	"worse": "bad", "worst": "bad",
	"more": "many", "most": "many",
	"less": "little", "least": "little",
}

// Plural nouns to singular. Ordered most-specific first.
var pluralRules = []inflectionRule{
	rule(`([^aeiou])ies$`, "${1}y"),     // puppies -> puppy
	rule(`([aeiou]y)s$`, "${1}"),        // boys -> boy
	rule(`(ss|[sxz]|[cs]h)es$`, "${1}"), // glasses -> glass, boxes -> box
	rule(`([^s])ves$`, "${1}fe"),        // wives -> wife
	rule(`ves$`, "f"),                   // leaves -> leaf
	rule(`s$`, ""),                      // general rule: cats -> cat
}

// Verb tenses to base form.
var verbRules = []inflectionRule{
	rule(`([^aeiou])ied$`, "${1}y"),  // studied -> study
	rule(`([^e])ing$`, "${1}"),       // running -> run
	rule(`ying$`, "y"),               // lying -> ly
	rule(`eing$`, "e"),               // seeing -> see
	rule(`([^e])ed$`, "${1}"),        // jumped -> jump
	rule(`eed$`, "ee"),               // freed -> free
	rule(`ies$`, "y"),                // flies -> fly
	rule(`([^aiou])es$`, "${1}e"),    // closes -> close
	rule(`([aeiou][pst])s$`, "${1}"), // stops -> stop
}

// Comparatives and superlatives to base form.
var comparativeRules = []inflectionRule{
	rule(`([^aeiou])ier$`, "${1}y"),    // happier -> happy
	rule(`([aeiou])ier$`, "${1}y"),     // crazier -> crazy
	rule(`([^aeiou])iest$`, "${1}y"),   // happiest -> happy
	rule(`([aeiou])iest$`, "${1}y"),    // craziest -> crazy
	rule(`([aeioulmnr])er$`, "${1}e"),  // nicer -> nice
	rule(`([^e])er$`, "${1}"),          // smaller -> small
	rule(`([aeioulmnr])est$`, "${1}e"), // nicest -> nice
	rule(`([^e])est$`, "${1}"),         // smallest -> small
}
