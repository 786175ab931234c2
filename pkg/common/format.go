package common

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gpt4thewin/europarl-dl/model"

	"github.com/duke-git/lancet/v2/slice"
)

var (
	regexpWH = regexp.MustCompile(`(\d+)[xX](\d+)`)
	regexpP  = regexp.MustCompile(`(\d+)[pP]`)
)

// ParseResolution reads "1280x720" or "720p" style strings.
func ParseResolution(s string) (w, h int64, ok bool) {
	if m := regexpWH.FindStringSubmatch(s); len(m) == 3 {
		w, _ = strconv.ParseInt(m[1], 10, 64)
		h, _ = strconv.ParseInt(m[2], 10, 64)
		return w, h, h > 0
	}
	if m := regexpP.FindStringSubmatch(s); len(m) == 2 {
		h, _ = strconv.ParseInt(m[1], 10, 64)
		return 0, h, h > 0
	}
	return 0, 0, false
}

func ResolutionNote(w, h int64) string {
	if h <= 0 {
		return ""
	}
	return fmt.Sprintf("%dp", h)
}

// SortFormats orders preferred-language formats first, then by resolution
// and bandwidth descending.
func SortFormats(formats []*model.Format) {
	slice.SortBy(formats, func(a, b *model.Format) bool {
		if a.LangRank != b.LangRank {
			return a.LangRank > b.LangRank
		}
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		return a.Bandwidth > b.Bandwidth
	})
}

// SelectFormat picks the best format not exceeding the wanted resolution,
// falling back to the last (smallest) one.
func SelectFormat(formats []*model.Format, resolution string) (index int) {
	_, wantH, ok := ParseResolution(resolution)
	if !ok {
		return 0
	}
	for i, f := range formats {
		if f.Height >= wantH {
			index = i
		} else {
			break
		}
	}
	return
}
