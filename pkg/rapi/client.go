// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/eodl/pkg/query"
	"gitlab.com/tozd/go/errors"
)

const defaultDomain = "https://www.eodms-sgdot.nrcan-rncan.gc.ca"

// 🔧 Options configures the HTTP client.
type Options struct {
	Domain       string // RAPI domain, defaults to the production EODMS domain
	Username     string
	Password     string
	QueryTimeout time.Duration // per search request, default 60s
	OrderTimeout time.Duration // per order/download request, default 180s
	PageSize     int           // records per search page, default 1000
}

// 🏭 NewClient creates a Client talking to the EODMS RAPI over HTTP.
func NewClient(opts Options) Client {
	if opts.Domain == "" {
		opts.Domain = defaultDomain
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 60 * time.Second
	}
	if opts.OrderTimeout <= 0 {
		opts.OrderTimeout = 180 * time.Second
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 1000
	}
	return &httpClient{opts: opts, http: &http.Client{}}
}

type httpClient struct {
	opts Options
	http *http.Client
}

// buildQuery renders the filter clauses and date ranges into the RAPI query
// expression.
func buildQuery(q SearchQuery) string {
	var terms []string
	for field, clause := range q.Filters {
		var alts []string
		for _, v := range clause.Values {
			alts = append(alts, fmt.Sprintf("%s %s '%s'", field, clause.Op, v))
		}
		terms = append(terms, "("+strings.Join(alts, " OR ")+")")
	}
	for _, d := range q.Dates {
		terms = append(terms, fmt.Sprintf(
			"(CATALOG_IMAGE.START_DATETIME >= '%s' AND CATALOG_IMAGE.START_DATETIME <= '%s')",
			query.ToISO(d.Start), query.ToISO(d.End)))
	}
	for _, f := range q.Features {
		terms = append(terms, fmt.Sprintf("(CATALOG_IMAGE.THE_GEOM_4326 %s %s)", f.Op, f.Geometry))
	}
	return strings.Join(terms, " AND ")
}

func (c *httpClient) Search(ctx context.Context, q SearchQuery) (SearchResults, error) {
	if q.Collection == "" {
		return nil, errors.New("search requires a collection")
	}
	return &pagedResults{client: c, query: q}, nil
}

// 📈 pagedResults pages through a search until the catalog is exhausted or
// the requested maximum is reached.
type pagedResults struct {
	client *httpClient
	query  SearchQuery
}

func (r *pagedResults) Records(ctx context.Context) ([]Raw, error) {
	logger := zerolog.Ctx(ctx)

	pageSize := r.client.opts.PageSize
	if r.query.MaxResults > 0 && r.query.MaxResults < pageSize {
		pageSize = r.query.MaxResults
	}

	var all []Raw
	first := 0
	for {
		page, err := r.client.searchPage(ctx, r.query, first, pageSize)
		if err != nil {
			return nil, errors.Errorf("fetching search page at %d: %w", first, err)
		}
		all = append(all, page...)

		logger.Debug().
			Str("collection", r.query.Collection).
			Int("page_records", len(page)).
			Int("total", len(all)).
			Msg("search page fetched")

		if len(page) < pageSize {
			break
		}
		if r.query.MaxResults > 0 && len(all) >= r.query.MaxResults {
			all = all[:r.query.MaxResults]
			break
		}
		first += pageSize
	}
	return all, nil
}

func (c *httpClient) searchPage(ctx context.Context, q SearchQuery, first, max int) ([]Raw, error) {
	params := url.Values{}
	params.Set("collection", q.Collection)
	if expr := buildQuery(q); expr != "" {
		params.Set("query", expr)
	}
	params.Set("firstResult", fmt.Sprint(first))
	params.Set("maxResults", fmt.Sprint(max))
	params.Set("format", "json")

	var body struct {
		Results []Raw `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, "/wes/rapi/search?"+params.Encode(), nil, &body, c.opts.QueryTimeout); err != nil {
		return nil, err
	}
	return body.Results, nil
}

func (c *httpClient) GetCollections(ctx context.Context) (map[string]Collection, error) {
	var body []struct {
		CollectionID string   `json:"collectionId"`
		Title        string   `json:"title"`
		Aliases      []string `json:"aliases"`
	}
	if err := c.do(ctx, http.MethodGet, "/wes/rapi/collections?format=json", nil, &body, c.opts.QueryTimeout); err != nil {
		return nil, errors.Errorf("fetching collections: %w", err)
	}

	colls := make(map[string]Collection, len(body))
	for _, b := range body {
		colls[b.CollectionID] = Collection{ID: b.CollectionID, Title: b.Title, Aliases: b.Aliases}
	}
	return colls, nil
}

func (c *httpClient) Order(ctx context.Context, records []Raw, priority string) ([]Raw, error) {
	items := make([]Raw, 0, len(records))
	for _, rec := range records {
		item := Raw{
			"collectionId": rec["collectionId"],
			"recordId":     rec["recordId"],
		}
		if priority != "" {
			item["priority"] = priority
		}
		items = append(items, item)
	}

	req := Raw{"destinations": []Raw{}, "items": items}

	var body struct {
		Items []Raw `json:"items"`
	}
	if err := c.do(ctx, http.MethodPost, "/wes/rapi/order", req, &body, c.opts.OrderTimeout); err != nil {
		return nil, errors.Errorf("submitting order: %w", err)
	}
	return body.Items, nil
}

func (c *httpClient) GetOrdersByRecords(ctx context.Context, records []Raw) ([]Raw, error) {
	wanted := map[string]bool{}
	for _, rec := range records {
		wanted[Str(rec["recordId"])] = true
	}

	var body struct {
		Items []Raw `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/wes/rapi/order?format=json", nil, &body, c.opts.OrderTimeout); err != nil {
		return nil, errors.Errorf("fetching orders: %w", err)
	}

	var matched []Raw
	for _, item := range body.Items {
		if wanted[Str(item["recordId"])] {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (c *httpClient) Download(ctx context.Context, items []Raw, destDir string) ([]Raw, error) {
	logger := zerolog.Ctx(ctx)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, errors.Errorf("creating download directory: %w", err)
	}

	outcomes := make([]Raw, 0, len(items))
	for _, item := range items {
		outcome := Raw{
			"recordId":      item["recordId"],
			"itemId":        item["itemId"],
			"orderId":       item["orderId"],
			"status":        Str(item["status"]),
			"statusMessage": item["statusMessage"],
		}

		if Str(item["status"]) != "AVAILABLE_FOR_DOWNLOAD" {
			outcomes = append(outcomes, outcome)
			continue
		}

		var paths []Raw
		dests, _ := item["destinations"].([]any)
		for _, d := range dests {
			dest, _ := d.(map[string]any)
			srcURL := Str(dest["url"])
			local := filepath.Join(destDir, filepath.Base(srcURL))

			if err := c.fetchFile(ctx, srcURL, local); err != nil {
				logger.Warn().Err(err).Str("url", srcURL).Msg("file download failed")
				outcome["status"] = "FAILED"
				outcome["statusMessage"] = err.Error()
				continue
			}
			paths = append(paths, Raw{"url": srcURL, "local_destination": local})
		}
		outcome["downloadPaths"] = paths
		outcome["downloaded"] = len(paths) > 0
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (c *httpClient) fetchFile(ctx context.Context, srcURL, dest string) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.OrderTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return errors.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.opts.Username, c.opts.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Errorf("fetching file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return errors.Errorf("writing destination file: %w", err)
	}
	return nil
}

// do performs one JSON request against the RAPI.
func (c *httpClient) do(ctx context.Context, method, path string, in any, out any, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.Domain+path, reqBody)
	if err != nil {
		return errors.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.opts.Username, c.opts.Password)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("unexpected status code %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
