package ies

import (
	"time"

	"github.com/gpt4thewin/europarl-dl/model"
	"github.com/gpt4thewin/europarl-dl/pkg/common"
)

type cacheInfo struct {
	timeStamp time.Time
	info      *model.MediaEntry
	url       string
}

type cacheInfoExtractor struct {
	ie    InfoExtractor
	cache []cacheInfo
}

func (c *cacheInfoExtractor) Extract(link string) (*model.MediaEntry, error) {
	isMatchedCache := func(cache cacheInfo) bool {
		if cache.url == link && time.Since(cache.timeStamp) < time.Minute*30 {
			return true
		}
		return false
	}

	for _, cache := range c.cache {
		if isMatchedCache(cache) {
			return cache.info, nil
		}
	}

	media, err := c.ie.Extract(link)
	if err == nil {
		common.SortFormats(media.Formats)
		c.cache = append(c.cache, cacheInfo{
			timeStamp: time.Now(),
			info:      media,
			url:       link,
		})
	}
	return media, err
}

func (c *cacheInfoExtractor) IsMatched(url string) bool {
	return c.ie.IsMatched(url)
}

func (c *cacheInfoExtractor) Name() string {
	return c.ie.Name()
}
