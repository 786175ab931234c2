package europa

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gpt4thewin/europarl-dl/model"
	"github.com/gpt4thewin/europarl-dl/pkg/common"
	"github.com/gpt4thewin/europarl-dl/pkg/ies"

	"github.com/duke-git/lancet/v2/convertor"
	"github.com/pkg/errors"
)

const DefaultPlaylistBase = "http://ec.europa.eu/avservices/video/player/playlist.cfm"

var (
	urlRegexp = regexp.MustCompile(`https?://ec\.europa\.eu/avservices/(?:video/player|audio/audioDetails)\.cfm\?`)
	refRegexp = regexp.MustCompile(`[?&]ref=([A-Za-z0-9-]+)`)
)

type EuropaIE struct {
	h            http.Client
	playlistBase string
}

func Name() string {
	return "europa"
}

func init() {
	ies.Regist(New())
}

func New() *EuropaIE {
	return &EuropaIE{
		h:            http.Client{},
		playlistBase: ies.Cfg.Endpoint("europa_playlist", DefaultPlaylistBase),
	}
}

func (e *EuropaIE) Name() string {
	return Name()
}

func (e *EuropaIE) IsMatched(link string) bool {
	return urlRegexp.MatchString(link) && refRegexp.MatchString(link)
}

func (e *EuropaIE) Extract(link string) (*model.MediaEntry, error) {
	videoID, ok := parseRef(link)
	if !ok {
		return nil, errors.Wrapf(ies.ErrMissingField, "no ref in %s", link)
	}

	pl, err := downloadPlaylist(&e.h, e.playlistBase+"?ID="+url.QueryEscape(videoID))
	if err != nil {
		return nil, err
	}

	prefs := ies.PreferredLangs(siteLang(link))
	rank := ies.LangRanker(prefs)

	title, ok := ies.SelectByLang(pl.Info.Title.labelsByLang(), prefs)
	if !ok {
		title = videoID
	}
	description, _ := ies.SelectByLang(pl.Info.Description.labelsByLang(), prefs)

	formats := make(model.FormatList, 0, len(pl.Files))
	for _, file := range pl.Files {
		if file.URL == "" {
			continue
		}
		formats = append(formats, &model.Format{
			URL:      file.URL,
			Ext:      strings.TrimPrefix(common.URLDotExt(file.URL), "."),
			Language: file.Lang,
			Note:     file.LangLabel,
			LangRank: rank(file.Lang),
		})
	}

	views, _ := convertor.ToInt(strings.TrimSpace(pl.Info.Views))
	return &model.MediaEntry{
		IE:          Name(),
		MediaID:     videoID,
		URL:         link,
		Title:       title,
		Description: description,
		Thumbnail:   pl.Info.ThumbURL,
		UploadDate:  common.ParseUploadDate(pl.Info.Date),
		Duration:    common.ParseClockDuration(pl.Info.Duration),
		ViewCount:   views,
		Formats:     formats,
		Subtitles:   model.SubtitleMap{},
	}, nil
}

func parseRef(link string) (string, bool) {
	m := refRegexp.FindStringSubmatch(link)
	if len(m) != 2 {
		return "", false
	}
	return m[1], true
}

func siteLang(link string) string {
	u, err := url.Parse(link)
	if err == nil {
		if lang := u.Query().Get("sitelang"); lang != "" {
			return lang
		}
	}
	return ies.Cfg.SiteLang
}
