package direct

import (
	"context"
	"errors"
	"time"

	"github.com/gpt4thewin/europarl-dl/pkg/common"
	"github.com/gpt4thewin/europarl-dl/pkg/downloader"
	europa "github.com/gpt4thewin/europarl-dl/pkg/ies/europa"
)

func Name() string {
	return "direct"
}

func init() {
	downloader.Regist(&DirectDownloader{})
}

// DirectDownloader handles progressive (non-manifest) format URLs, which is
// what the legacy avservices playlists carry.
type DirectDownloader struct {
}

func (d *DirectDownloader) Download(ctx context.Context, opt downloader.DownloadOptions, sink downloader.ProgressSink) error {
	if opt.Format == nil || opt.Format.URL == "" {
		return errors.New("no format available for direct download")
	}
	if opt.Ext == "" {
		opt.Ext = common.URLDotExt(opt.Format.URL)
	}
	if opt.Stem == "" {
		opt.Stem = time.Now().Format("20060102")
	}
	opt.Stem = common.ReplaceWrongFileChars(opt.Stem)
	return downloadFile(ctx, opt.Format.URL, opt.FilePath(), sink)
}

func (d *DirectDownloader) SupportedIE() []string {
	return []string{
		europa.Name(),
	}
}

func (d *DirectDownloader) Name() string {
	return Name()
}
