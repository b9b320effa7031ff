package registry

import (
	"regexp"
	"strings"
)

// badgeSeries collapses historic badge prefixes ("IQ" plus any two digits)
// into the current series.
var badgeSeries = regexp.MustCompile(`IQ\d{2}`)

// codePrefix matches the badge prefix stripped before building lookup codes:
// "IQ" followed by a digit and at least one zero.
var codePrefix = regexp.MustCompile(`[Ii][Qq]\d0+`)

// codeAlphabet maps badge digits (and the check character X) to lookup code
// letters.
var codeAlphabet = map[rune]rune{
	'0': 'a', '1': 'b', '2': 'c', '3': 'd', '4': 'e',
	'5': 'f', '6': 'g', '7': 'h', '8': 'i', '9': 'j',
	'X': 'k', 'x': 'k',
}

// capitalizeExceptions holds Portuguese connective words kept lowercase when
// capitalizing names and dish descriptions.
var capitalizeExceptions = map[string]struct{}{
	"a": {}, "o": {}, "as": {}, "os": {},
	"de": {}, "dos": {}, "das": {}, "do": {}, "da": {},
	"e": {}, "é": {}, "com": {}, "sem": {}, "ou": {},
	"para": {}, "por": {}, "no": {}, "na": {}, "nos": {}, "nas": {},
}

// NormalizeBadge canonicalizes a badge: surrounding whitespace is removed, the
// code is uppercased and historic series prefixes are rewritten to the current
// one.
func NormalizeBadge(badge string) string {
	badge = strings.ToUpper(strings.TrimSpace(badge))

	return badgeSeries.ReplaceAllString(badge, "IQ30")
}

// LookupCode derives the obfuscated serving desk code of a badge: the series
// prefix is stripped, the remaining characters are mapped through the code
// alphabet and joined with spaces.
func LookupCode(badge string) string {
	stripped := codePrefix.ReplaceAllString(badge, "")

	letters := make([]string, 0, len(stripped))
	for _, r := range stripped {
		if mapped, ok := codeAlphabet[r]; ok {
			r = mapped
		}
		letters = append(letters, string(r))
	}

	return strings.Join(letters, " ")
}

// CapitalizeWord uppercases the first letter of a word and lowercases the
// rest, keeping connective exception words entirely lowercase.
func CapitalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}

	lower := strings.ToLower(word)
	if _, ok := capitalizeExceptions[lower]; ok {
		return lower
	}

	runes := []rune(lower)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]

	return string(runes)
}

// CapitalizeName applies CapitalizeWord to every word of a name or dish
// description.
func CapitalizeName(name string) string {
	words := strings.Split(strings.TrimSpace(name), " ")
	for i, w := range words {
		words[i] = CapitalizeWord(w)
	}

	return strings.Join(words, " ")
}
