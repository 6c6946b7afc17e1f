// Package facets normalizes raw heterogeneous catalog fields into canonical
// values the search filters can work with. All functions are pure; malformed
// input is dropped, never reported.
package facets

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

// Fallback duration bounds when the catalog yields no parseable durations.
const (
	DefaultMinDuration = 60
	DefaultMaxDuration = 240
)

var leadingDigits = regexp.MustCompile(`^\d+`)

// NormalizeCountries splits comma-separated country strings, trims whitespace,
// drops empties and duplicates, and returns the distinct values in ascending
// lexical order. Case is preserved.
func NormalizeCountries(raw []string) []string {
	seen := make(map[string]struct{})
	for _, s := range raw {
		for _, part := range strings.Split(s, ",") {
			c := strings.TrimSpace(part)
			if c == "" {
				continue
			}
			seen[c] = struct{}{}
		}
	}
	countries := make([]string, 0, len(seen))
	for c := range seen {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}

// DurationRange extracts the leading run of digits from each raw duration
// string ("169 min" -> 169) and returns the true min and max. Strings without
// leading digits contribute nothing; when nothing parses the fixed default
// range is returned.
func DurationRange(raw []string) model.DurationRange {
	minutes := make([]int, 0, len(raw))
	for _, s := range raw {
		m := leadingDigits.FindString(strings.TrimSpace(s))
		if m == "" {
			continue
		}
		v, err := strconv.Atoi(m)
		if err != nil || v <= 0 {
			continue
		}
		minutes = append(minutes, v)
	}
	if len(minutes) == 0 {
		return model.DurationRange{Min: DefaultMinDuration, Max: DefaultMaxDuration}
	}
	r := model.DurationRange{Min: minutes[0], Max: minutes[0]}
	for _, v := range minutes[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}

// DurationMinutes returns the leading minute count of a single raw duration
// string, or 0 when it has none. Used by the in-memory search to mirror the
// SQL REGEXP_SUBSTR cast.
func DurationMinutes(raw string) int {
	m := leadingDigits.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

// IsValidSearchQuery guards free-text queries before they are executed or
// logged: at least two characters after trimming, at least one letter or
// digit, and not a single repeated character.
func IsValidSearchQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < 2 {
		return false
	}
	meaningful := false
	for _, r := range q {
		if isLetterOrDigit(r) {
			meaningful = true
			break
		}
	}
	if !meaningful {
		return false
	}
	runes := []rune(q)
	repetitive := true
	for _, r := range runes[1:] {
		if r != runes[0] {
			repetitive = false
			break
		}
	}
	return !repetitive
}

func isLetterOrDigit(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 'а' && r <= 'я', r == 'і', r == 'ї', r == 'є', r == 'ґ':
		// Cyrillic, matching the catalog's Ukrainian titles.
		return true
	}
	return false
}
