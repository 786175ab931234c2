package ies

import (
	"github.com/duke-git/lancet/v2/slice"
)

// FallbackLang is the generic "international" track code both platforms use
// when no per-language variant exists.
const FallbackLang = "int"

// PreferredLangs builds the ordered language preference list from the
// user-selected site language: (sitelang, "en", "int"), deduplicated while
// keeping first occurrence.
func PreferredLangs(siteLang string) []string {
	prefs := make([]string, 0, 3)
	if siteLang != "" {
		prefs = append(prefs, siteLang)
	}
	prefs = append(prefs, "en", FallbackLang)
	return slice.Unique(prefs)
}

// LangRanker returns a rank function over the reversed preference list, so
// the first preferred language gets the highest rank. Unlisted languages
// rank -1.
func LangRanker(prefs []string) func(lang string) int {
	reversed := make([]string, len(prefs))
	copy(reversed, prefs)
	slice.Reverse(reversed)
	return func(lang string) int {
		for i, p := range reversed {
			if p == lang {
				return i
			}
		}
		return -1
	}
}

// SelectByLang picks the first non-empty candidate whose language appears in
// prefs, in preference order.
func SelectByLang(candidates map[string]string, prefs []string) (string, bool) {
	for _, p := range prefs {
		if v := candidates[p]; v != "" {
			return v, true
		}
	}
	return "", false
}
