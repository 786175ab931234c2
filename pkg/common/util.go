package common

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

func URLDotExt(u string) string {
	info, err := url.Parse(u)
	if err != nil {
		return ""
	}
	return filepath.Ext(info.Path)
}

// ResolveURL resolves ref against base the way a browser would.
func ResolveURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// UpdateURLQuery returns u with the given query parameters set, keeping any
// existing ones.
func UpdateURLQuery(u string, params map[string]string) string {
	info, err := url.Parse(u)
	if err != nil {
		return u
	}
	q := info.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	info.RawQuery = q.Encode()
	return info.String()
}

var reWrongFileChars = regexp.MustCompile(`[\x{1}-\x{6}\x{e}-\x{19}\x{1b}-\x{1f}"<>\|\a\t\n\v\f\r\:\*\?\\\/]`)

func ReplaceWrongFileChars(stem string) string {
	stem = strings.ReplaceAll(strings.ReplaceAll(stem, "\\", "_"), "/", "_")
	return reWrongFileChars.ReplaceAllString(stem, "_")
}
