package epapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gpt4thewin/europarl-dl/pkg/ies"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	DefaultBase = "https://acs-api.europarl.connectedviews.eu"

	// Fixed tenant the public webstreaming portal queries with.
	tenantID   = "bae646ca-1fc8-4363-80ba-2c04f06b4968"
	apiVersion = "1.0"
)

type Client struct {
	h    http.Client
	base string
}

func New(base string) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{
		h:    http.Client{},
		base: strings.TrimSuffix(base, "/"),
	}
}

// FullMeeting fetches the meeting record for an external reference taken
// from a webstreaming URL.
func (c *Client) FullMeeting(externalReference string) (gjson.Result, error) {
	return c.get("/api/FullMeeting", map[string]any{
		"api-version":       apiVersion,
		"tenantId":          tenantID,
		"externalReference": externalReference,
	})
}

func (c *Client) get(api string, params map[string]any) (gjson.Result, error) {
	u := url.Values{}
	for k, v := range params {
		u.Set(k, fmt.Sprintf("%v", v))
	}
	if !strings.HasPrefix(api, "/") {
		api = "/" + api
	}
	resp, err := c.h.Get(c.base + api + "?" + u.Encode())
	if err != nil {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "get %s: %v", api, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "get %s: status %d", api, resp.StatusCode)
	}
	by, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "get %s: %v", api, err)
	}
	if !gjson.ValidBytes(by) {
		return gjson.Result{}, errors.Wrapf(ies.ErrRetrieval, "get %s: not json", api)
	}
	return gjson.ParseBytes(by), nil
}
