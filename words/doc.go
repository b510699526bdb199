// Package words provides English word normalization and CEFR vocabulary
// lookup used by the reading-level analysis plugins.
//
// Normalization folds surface forms down to dictionary headwords:
// contractions, abbreviations, slang, possessives, hyphenation and
// common inflections. Lookup maps a normalized word to its CEFR band
// (a1 through c2) from a loaded vocabulary list.
package words
