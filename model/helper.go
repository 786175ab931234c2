package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/duke-git/lancet/v2/slice"
)

func (f FormatList) Value() (driver.Value, error) {
	if len(f) == 0 {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *FormatList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	data, ok := value.([]byte)
	if !ok || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, f)
}

func (m SubtitleMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *SubtitleMap) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	data, ok := value.([]byte)
	if !ok || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, m)
}

/* 合并字幕，不会覆盖已有条目 */
func (m SubtitleMap) Merge(other SubtitleMap) {
	for lang, subs := range other {
		existing := m[lang]
		for _, sub := range subs {
			cur := sub
			if slice.ContainBy(existing, func(have *Subtitle) bool {
				return have.URL == cur.URL
			}) {
				continue
			}
			existing = append(existing, cur)
		}
		m[lang] = existing
	}
}
