package hls

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const masterFixture = `#EXTM3U
#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="audio1",NAME="Original",URI="audio/track01.m3u8"
#EXT-X-MEDIA:TYPE=SUBTITLES,GROUP-ID="subs",NAME="English",LANGUAGE="en",URI="subs/en.m3u8"
#EXT-X-STREAM-INF:BANDWIDTH=2000000,RESOLUTION=1280x720,AUDIO="audio1",SUBTITLES="subs"
video/720p.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=1000000,RESOLUTION=640x360,AUDIO="audio1",SUBTITLES="subs"
video/360p.m3u8
`

func TestExpandMaster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(masterFixture))
	}))
	defer server.Close()

	formats, subtitles, err := Expand(server.URL + "/live/master.m3u8")
	require.NoError(t, err)

	require.Len(t, formats, 2)
	assert.Equal(t, server.URL+"/live/video/720p.m3u8", formats[0].URL)
	assert.Equal(t, int64(1280), formats[0].Width)
	assert.Equal(t, int64(720), formats[0].Height)
	assert.Equal(t, int64(2000000), formats[0].Bandwidth)
	assert.Equal(t, "audio1", formats[0].Language)
	assert.Equal(t, "720p", formats[0].Note)
	assert.Equal(t, -1, formats[0].LangRank)
	assert.Equal(t, server.URL+"/live/video/360p.m3u8", formats[1].URL)

	// subtitle alternative is shared between variants, collected once
	require.Len(t, subtitles["en"], 1)
	assert.Equal(t, server.URL+"/live/subs/en.m3u8", subtitles["en"][0].URL)
}

func TestExpandMediaPlaylist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("#EXTM3U\n#EXT-X-TARGETDURATION:5\n#EXTINF:5.0,\n0.ts\n#EXT-X-ENDLIST\n"))
	}))
	defer server.Close()

	formats, subtitles, err := Expand(server.URL + "/chunks.m3u8")
	require.NoError(t, err)
	require.Len(t, formats, 1)
	assert.Equal(t, server.URL+"/chunks.m3u8", formats[0].URL)
	assert.Empty(t, subtitles)
}

func TestExpandErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, _, err := Expand(server.URL + "/missing.m3u8")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrManifest))

	_, _, err = Expand("http://127.0.0.1:1/unreachable.m3u8")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrManifest))
}
