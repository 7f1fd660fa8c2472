package services

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase capitalizes the first letter of each word and lowers the rest,
// the normalization applied to tag names and journal titles on write.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// capitalize upper-cases the first rune and lower-cases the remainder,
// the normalization applied to first and last names on write.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// truncateSecond drops sub-second precision. Timestamps are always stored in
// UTC without microseconds.
func truncateSecond(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
