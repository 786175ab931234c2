package model

import (
	"time"
)

/* 单个可下载的媒体变体 */
type Format struct {
	URL       string
	Ext       string
	Width     int64
	Height    int64
	Bandwidth int64

	// Language starts out as whatever identifier the source document carries
	// (for HLS it is the audio track/group id) and is rewritten to a real
	// language code by the extractor.
	Language string
	Note     string

	// LangRank: higher = earlier in the preferred language list, -1 = unranked.
	LangRank int
}

type FormatList []*Format

type Subtitle struct {
	URL  string
	Ext  string
	Name string
}

type SubtitleMap map[string][]*Subtitle

type MediaEntry struct {
	IE      string
	MediaID string

	Title       string
	Description string
	Thumbnail   string
	URL         string
	Duration    int64
	UploadDate  time.Time
	ReleaseTime time.Time
	ViewCount   int64
	IsLive      bool

	Formats   FormatList  `gorm:"type:json"`
	Subtitles SubtitleMap `gorm:"type:json"`
}
