package europarl

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gpt4thewin/europarl-dl/model"
	"github.com/gpt4thewin/europarl-dl/pkg/common"
	"github.com/gpt4thewin/europarl-dl/pkg/hls"
	"github.com/gpt4thewin/europarl-dl/pkg/ies"
	"github.com/gpt4thewin/europarl-dl/pkg/ies/europarl/epapi"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const timeRangeLayout = "2006-01-02T15:04:05Z"

var (
	hostRegexp = regexp.MustCompile(`https?://multimedia\.europarl\.europa\.eu/[^/#?]+/([^/#?]+)/[\w-]+_[\w-]+`)
	// Host-agnostic id capture so the extraction path only depends on the
	// path shape: <section>/<slug>_<id>. The slug may itself contain
	// underscores; the id is the tail after the last one.
	idRegexp = regexp.MustCompile(`/[^/#?]+/[\w-]+_([\w-]+)`)
)

type ManifestExpander func(manifestURL string) (model.FormatList, model.SubtitleMap, error)

type WebstreamIE struct {
	h      http.Client
	client *epapi.Client
	expand ManifestExpander
}

func Name() string {
	return "europarl:webstream"
}

func init() {
	ies.Regist(New())
}

func New() *WebstreamIE {
	return &WebstreamIE{
		h:      http.Client{},
		client: epapi.New(ies.Cfg.Endpoint("fullmeeting", epapi.DefaultBase)),
		expand: func(manifestURL string) (model.FormatList, model.SubtitleMap, error) {
			return hls.Expand(manifestURL)
		},
	}
}

func (e *WebstreamIE) Name() string {
	return Name()
}

func (e *WebstreamIE) IsMatched(link string) bool {
	m := hostRegexp.FindStringSubmatch(link)
	// The /video/ section pages carry a different data shape and are not
	// supported.
	return len(m) == 2 && !strings.HasPrefix(m[1], "video")
}

func (e *WebstreamIE) Extract(link string) (*model.MediaEntry, error) {
	displayID, ok := parseDisplayID(link)
	if !ok {
		return nil, errors.Wrapf(ies.ErrMissingField, "no display id in %s", link)
	}

	pageProps, err := downloadPageProps(&e.h, link)
	if err != nil {
		return nil, err
	}

	meeting, err := e.client.FullMeeting(displayID)
	if err != nil {
		return nil, err
	}

	mediaID := meeting.Get("id").String()
	if mediaID == "" {
		return nil, errors.Wrap(ies.ErrMissingField, "meeting id")
	}

	start, startOK := common.ParseTimestamp(meeting.Get("startDateTime").String())
	end, endOK := common.ParseTimestamp(meeting.Get("endDateTime").String())
	duration, _ := common.FloorDuration(start, end)

	prefs := ies.PreferredLangs(siteLang(link))
	rank := ies.LangRanker(prefs)
	trackLang := trackLanguages(meeting)

	formats := make(model.FormatList, 0)
	subtitles := make(model.SubtitleMap)
	for _, manifestURL := range meetingManifestURLs(meeting) {
		if startOK && endOK {
			manifestURL = common.UpdateURLQuery(manifestURL, map[string]string{
				"start": start.Format(timeRangeLayout),
				"end":   end.Format(timeRangeLayout),
			})
		}
		fmts, subs, err := e.expand(manifestURL)
		if err != nil {
			return nil, err
		}
		for _, f := range fmts {
			f.Language = trackLang(f.Language)
			f.LangRank = rank(f.Language)
		}
		formats = append(formats, fmts...)
		subtitles.Merge(subs)
	}

	entry := &model.MediaEntry{
		IE:        Name(),
		MediaID:   mediaID,
		URL:       link,
		Title:     webstreamTitle(pageProps),
		Duration:  duration,
		IsLive:    pageProps.Get("mediaItem.mediaSubType").String() == "Live",
		Formats:   formats,
		Subtitles: subtitles,
	}
	if t, ok := common.ParseISO8601(meeting.Get("startDateTime").String()); ok {
		entry.ReleaseTime = t
	}
	if entry.Title == "" {
		entry.Title = displayID
	}
	return entry, nil
}

func parseDisplayID(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	m := idRegexp.FindStringSubmatch(u.Path)
	if len(m) != 2 {
		return "", false
	}
	return m[1], true
}

func siteLang(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ies.Cfg.SiteLang
	}
	if lang := u.Query().Get("sitelang"); lang != "" {
		return lang
	}
	// The first path segment of a webstreaming URL is the UI language.
	if parts := strings.Split(strings.Trim(u.Path, "/"), "/"); len(parts) >= 2 && len(parts[0]) == 2 {
		return parts[0]
	}
	return ies.Cfg.SiteLang
}

func webstreamTitle(pageProps gjson.Result) string {
	if title := pageProps.Get("mediaItem.title").String(); title != "" {
		return title
	}
	return pageProps.Get("title").String()
}

// meetingManifestURLs normalizes the shape-shifting meetingVideo /
// meetingVideos fields into one deduplicated list.
func meetingManifestURLs(meeting gjson.Result) []string {
	urls := make([]string, 0, 1)
	if u := meeting.Get("meetingVideo.hlsUrl").String(); u != "" {
		urls = append(urls, u)
	}
	for _, video := range meeting.Get("meetingVideos").Array() {
		if u := video.Get("hlsUrl").String(); u != "" {
			urls = append(urls, u)
		}
	}
	return slice.Unique(urls)
}

// trackLanguages maps HLS track identifiers to languages via the
// meetingAudio side list. Unknown or empty identifiers resolve to "".
func trackLanguages(meeting gjson.Result) func(trackIdentifier string) string {
	audios := meeting.Get("meetingAudio").Array()
	return func(trackIdentifier string) string {
		if trackIdentifier == "" {
			return ""
		}
		for _, audio := range audios {
			if audio.Get("trackIdentifier").String() == trackIdentifier {
				return audio.Get("language").String()
			}
		}
		return ""
	}
}
