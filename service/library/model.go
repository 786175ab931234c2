package library

import (
	"github.com/gpt4thewin/europarl-dl/model"
	"gorm.io/gorm"
)

// 每条是一次成功的解析记录
type ExtractRecord struct {
	gorm.Model
	IE  string
	URL string `gorm:"index"`

	MediaID     string
	Title       string
	Description string
	Thumbnail   string
	Duration    int64
	IsLive      bool

	Formats   model.FormatList  `gorm:"type:json"`
	Subtitles model.SubtitleMap `gorm:"type:json"`
}

func (r *ExtractRecord) TableName() string {
	return "extract_records"
}

func newRecord(url string, entry *model.MediaEntry) *ExtractRecord {
	return &ExtractRecord{
		IE:          entry.IE,
		URL:         url,
		MediaID:     entry.MediaID,
		Title:       entry.Title,
		Description: entry.Description,
		Thumbnail:   entry.Thumbnail,
		Duration:    entry.Duration,
		IsLive:      entry.IsLive,
		Formats:     entry.Formats,
		Subtitles:   entry.Subtitles,
	}
}
