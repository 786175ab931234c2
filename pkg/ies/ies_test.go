package ies

import (
	"strings"
	"testing"

	"github.com/gpt4thewin/europarl-dl/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIE struct {
	calls int
}

func (s *stubIE) Name() string { return "stub" }

func (s *stubIE) IsMatched(url string) bool {
	return strings.Contains(url, "stub.example.com")
}

func (s *stubIE) Extract(link string) (*model.MediaEntry, error) {
	s.calls++
	return &model.MediaEntry{
		MediaID: "stub-id",
		URL:     link,
		Formats: model.FormatList{
			{URL: "http://stub.example.com/low.mp4", LangRank: -1, Height: 360},
			{URL: "http://stub.example.com/high.mp4", LangRank: 1, Height: 720},
		},
	}, nil
}

func TestRegistryAndCache(t *testing.T) {
	stub := &stubIE{}
	Regist(stub)

	ie, err := GetIE("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", ie.Name())

	ie, err = GetIE("", "http://stub.example.com/watch?v=1")
	require.NoError(t, err)

	entry, err := ie.Extract("http://stub.example.com/watch?v=1")
	require.NoError(t, err)
	assert.Equal(t, "stub-id", entry.MediaID)

	// formats come back sorted, preferred language first
	assert.Equal(t, "http://stub.example.com/high.mp4", entry.Formats[0].URL)

	// second call for the same url is served from cache
	_, err = ie.Extract("http://stub.example.com/watch?v=1")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)

	_, err = GetIE("http://unknown.example.com/")
	assert.Error(t, err)
}
