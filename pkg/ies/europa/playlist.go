package europa

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"

	"github.com/gpt4thewin/europarl-dl/pkg/ies"

	"github.com/pkg/errors"
)

// playlist.cfm XML shape: one <info> block with localized title/description
// item lists, plus a flat <files> list of per-language variants.
type playlist struct {
	Info  playlistInfo   `xml:"info"`
	Files []playlistFile `xml:"files>file"`
}

type playlistInfo struct {
	Title       langItems `xml:"title"`
	Description langItems `xml:"description"`
	ThumbURL    string    `xml:"thumburl"`
	Date        string    `xml:"date"`
	Duration    string    `xml:"duration"`
	Views       string    `xml:"views"`
}

type langItems struct {
	Items []langItem `xml:"item"`
}

type langItem struct {
	Lang  string `xml:"lg"`
	Label string `xml:"label"`
}

type playlistFile struct {
	URL       string `xml:"url"`
	Lang      string `xml:"lg"`
	LangLabel string `xml:"lglabel"`
}

func downloadPlaylist(h *http.Client, playlistURL string) (*playlist, error) {
	resp, err := h.Get(playlistURL)
	if err != nil {
		return nil, errors.Wrapf(ies.ErrRetrieval, "get %s: %v", playlistURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ies.ErrRetrieval, "get %s: status %d", playlistURL, resp.StatusCode)
	}
	by, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ies.ErrRetrieval, "get %s: %v", playlistURL, err)
	}
	var pl playlist
	if err := xml.Unmarshal(by, &pl); err != nil {
		return nil, errors.Wrapf(ies.ErrRetrieval, "parse playlist: %v", err)
	}
	return &pl, nil
}

// labelsByLang keeps the last non-empty label seen for each language.
func (l langItems) labelsByLang() map[string]string {
	items := make(map[string]string, len(l.Items))
	for _, item := range l.Items {
		label := strings.TrimSpace(item.Label)
		if item.Lang != "" && label != "" {
			items[item.Lang] = label
		}
	}
	return items
}
