package europarl

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gpt4thewin/europarl-dl/pkg/ies"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// downloadPageProps fetches a webstreaming page and pulls the embedded
// Next.js data blob out of it.
func downloadPageProps(h *http.Client, link string) (gjson.Result, error) {
	resp, err := h.Get(link)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "get %s: %v", link, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "get %s: status %d", link, resp.StatusCode)
	}
	by, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "get %s: %v", link, err)
	}
	return pagePropsFromHTML(by)
}

func pagePropsFromHTML(page []byte) (gjson.Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "parse html: %v", err)
	}
	raw := doc.Find("script#__NEXT_DATA__").First().Text()
	if raw == "" {
		return gjson.Result{}, errors.Wrap(ies.ErrMissingField, "__NEXT_DATA__")
	}
	if !gjson.Valid(raw) {
		return gjson.Result{}, errors.Wrap(ies.ErrRetrieval, "__NEXT_DATA__ not json")
	}
	return gjson.Get(raw, "props.pageProps"), nil
}
