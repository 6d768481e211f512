// Package normalize cleans raw record fields before grouping: whitespace
// trimming, unicode normalization, sentence-style capitalization, US state
// abbreviation expansion, and the "Unknown" fill for blank states.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/datamunge/teamsplit/internal/csvio"
)

// stateNames expands two-letter US state abbreviations to full names.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
}

// lower handles unicode-aware lowercasing for Capitalize.
var lower = cases.Lower(language.Und)

// Clean returns a cleaned copy of r:
//   - every field trimmed of surrounding whitespace
//   - blank State/Province becomes "Unknown"
//   - two-letter US state abbreviations expanded to full names
//   - text fields other than Country capitalized (first rune upper, rest lower)
//   - Country only trimmed, so codes like "USA" survive intact
func Clean(r csvio.RawRecord) csvio.RawRecord {
	return csvio.RawRecord{
		Institution:   Capitalize(r.Institution),
		City:          Capitalize(r.City),
		StateProvince: ExpandState(r.StateProvince),
		Country:       strings.TrimSpace(r.Country),
		TeamNumber:    strings.TrimSpace(r.TeamNumber),
		Advisor:       Capitalize(r.Advisor),
		Problem:       Capitalize(r.Problem),
		Ranking:       Capitalize(r.Ranking),
	}
}

// ExpandState trims s, fills blanks with "Unknown", and expands two-letter
// US state abbreviations (case-insensitive). Other values pass through
// unchanged apart from trimming; non-US provinces keep their spelling.
func ExpandState(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Unknown"
	}
	if len(s) == 2 {
		if full, ok := stateNames[strings.ToUpper(s)]; ok {
			return full
		}
	}
	return s
}

// Capitalize trims s, applies NFC unicode normalization, uppercases the
// first rune, and lowercases everything after it.
func Capitalize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	runes := []rune(lower.String(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
