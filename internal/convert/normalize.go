package convert

import "golang.org/x/text/unicode/norm"

// normalizeName canonicalizes an identifier spelling to NFC before it is
// used as a Scope/Context lookup key. Two Unicode-equivalent spellings of
// the same declared name (e.g. a precomposed vs. combining-mark
// accented letter) must resolve to the same alias/suppress-list entry;
// mirrors the teacher's own lexer_util identifier normalization, applied
// here at the declaration/reference boundary instead of at the lexer
// since this port has no lexer of its own.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}
