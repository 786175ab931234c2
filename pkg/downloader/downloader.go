package downloader

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gpt4thewin/europarl-dl/model"
)

type ProgressSink func(total, downloaded, speed int64, percent float64)

type DownloadOptions struct {
	Format *model.Format
	Dir    string
	Stem   string
	Ext    string
}

func (o *DownloadOptions) FilePath() string {
	ext := o.Ext
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(o.Dir, o.Stem+ext)
}

type Downloader interface {
	Name() string
	SupportedIE() []string
	Download(ctx context.Context, opt DownloadOptions, sink ProgressSink) error
}

var _downloaders = make(map[string]Downloader)

func Regist(d Downloader) {
	_downloaders[d.Name()] = d
}

func GetByName(name string) Downloader {
	if name == "" {
		log.Panic("downloader name is empty")
		return nil
	}
	if d, ok := _downloaders[name]; ok {
		return d
	}
	log.Panicf("downloader %s not found", name)
	return nil
}

func GetByIE(ie string) (Downloader, error) {
	for _, d := range _downloaders {
		for _, supportedIE := range d.SupportedIE() {
			if strings.EqualFold(supportedIE, ie) {
				return d, nil
			}
		}
	}
	return nil, fmt.Errorf("no downloader supports %s", ie)
}
