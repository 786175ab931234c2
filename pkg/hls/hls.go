package hls

import (
	"net/http"
	"strings"

	"github.com/gpt4thewin/europarl-dl/model"
	"github.com/gpt4thewin/europarl-dl/pkg/common"

	"github.com/grafov/m3u8"
	"github.com/pkg/errors"
)

// ErrManifest: 清单无法获取或者解析
var ErrManifest = errors.New("manifest failed")

var _defclient = &http.Client{}

// Expand fetches an HLS manifest and turns it into concrete formats plus
// subtitle tracks. For a master playlist every variant becomes a format,
// carrying the audio group id in Format.Language (callers resolve that
// identifier to a real language themselves). A plain media playlist yields a
// single format for the manifest itself.
func Expand(manifestURL string, client ...*http.Client) (model.FormatList, model.SubtitleMap, error) {
	h := _defclient
	if len(client) > 0 && client[0] != nil {
		h = client[0]
	}

	resp, err := h.Get(manifestURL)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrManifest, "fetch %s: %v", manifestURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, errors.Wrapf(ErrManifest, "fetch %s: status %d", manifestURL, resp.StatusCode)
	}

	playlist, listType, err := m3u8.DecodeFrom(resp.Body, false)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrManifest, "decode %s: %v", manifestURL, err)
	}

	if listType != m3u8.MASTER {
		return model.FormatList{
			&model.Format{
				URL:      manifestURL,
				Ext:      "m3u8",
				LangRank: -1,
			},
		}, model.SubtitleMap{}, nil
	}

	master := playlist.(*m3u8.MasterPlaylist)
	formats := make(model.FormatList, 0, len(master.Variants))
	subtitles := make(model.SubtitleMap)
	for _, variant := range master.Variants {
		if variant == nil || variant.URI == "" {
			continue
		}
		w, hgt, _ := common.ParseResolution(variant.Resolution)
		formats = append(formats, &model.Format{
			URL:       common.ResolveURL(manifestURL, variant.URI),
			Ext:       "m3u8",
			Width:     w,
			Height:    hgt,
			Bandwidth: int64(variant.Bandwidth),
			Language:  variant.Audio,
			Note:      common.ResolutionNote(w, hgt),
			LangRank:  -1,
		})
		for _, alt := range variant.Alternatives {
			if alt == nil || !strings.EqualFold(alt.Type, "SUBTITLES") || alt.URI == "" {
				continue
			}
			lang := alt.Language
			if lang == "" {
				lang = alt.Name
			}
			subtitles.Merge(model.SubtitleMap{
				lang: {{
					URL:  common.ResolveURL(manifestURL, alt.URI),
					Ext:  "vtt",
					Name: alt.Name,
				}},
			})
		}
	}
	return formats, subtitles, nil
}
