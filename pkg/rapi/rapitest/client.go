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

// Package rapitest provides an in-memory rapi.Client for tests.
package rapitest

import (
	"context"
	"sync"

	"github.com/walteh/eodl/pkg/rapi"
	"gitlab.com/tozd/go/errors"
)

// 🧪 Client is a configurable in-memory catalog. Search results can be
// keyed per collection or served through SearchFunc for finer control.
type Client struct {
	mu sync.Mutex

	// SearchResults maps collection id to the records a search returns.
	SearchResults map[string][]rapi.Raw
	// SearchFunc, when set, overrides SearchResults.
	SearchFunc func(q rapi.SearchQuery) ([]rapi.Raw, error)

	Collections map[string]rapi.Collection

	// OrderResponses are popped one per Order call; when exhausted, Order
	// echoes the submitted records as successful items.
	OrderResponses [][]rapi.Raw
	OrderErr       error

	ExistingOrders []rapi.Raw

	DownloadOutcomes []rapi.Raw
	DownloadErr      error

	// Call records for assertions.
	SearchCalls   []rapi.SearchQuery
	OrderCalls    [][]rapi.Raw
	DownloadCalls [][]rapi.Raw

	orderSeq int
}

var _ rapi.Client = (*Client)(nil)

type staticResults struct {
	records []rapi.Raw
	err     error
}

func (s *staticResults) Records(ctx context.Context) ([]rapi.Raw, error) {
	return s.records, s.err
}

func (c *Client) Search(ctx context.Context, q rapi.SearchQuery) (rapi.SearchResults, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SearchCalls = append(c.SearchCalls, q)

	if c.SearchFunc != nil {
		records, err := c.SearchFunc(q)
		return &staticResults{records: records, err: err}, nil
	}
	return &staticResults{records: c.SearchResults[q.Collection]}, nil
}

func (c *Client) GetCollections(ctx context.Context) (map[string]rapi.Collection, error) {
	if c.Collections != nil {
		return c.Collections, nil
	}
	return map[string]rapi.Collection{}, nil
}

func (c *Client) Order(ctx context.Context, records []rapi.Raw, priority string) ([]rapi.Raw, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.OrderCalls = append(c.OrderCalls, records)

	if c.OrderErr != nil {
		return nil, c.OrderErr
	}
	if len(c.OrderResponses) > 0 {
		resp := c.OrderResponses[0]
		c.OrderResponses = c.OrderResponses[1:]
		return resp, nil
	}

	// Echo the submitted records as submitted order items.
	items := make([]rapi.Raw, 0, len(records))
	for _, rec := range records {
		c.orderSeq++
		items = append(items, rapi.Raw{
			"recordId":     rec["recordId"],
			"collectionId": rec["collectionId"],
			"orderId":      "order-1",
			"itemId":       c.orderSeq,
			"status":       "SUBMITTED",
		})
	}
	return items, nil
}

func (c *Client) GetOrdersByRecords(ctx context.Context, records []rapi.Raw) ([]rapi.Raw, error) {
	return c.ExistingOrders, nil
}

func (c *Client) Download(ctx context.Context, items []rapi.Raw, destDir string) ([]rapi.Raw, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DownloadCalls = append(c.DownloadCalls, items)

	if c.DownloadErr != nil {
		return nil, errors.Errorf("download: %w", c.DownloadErr)
	}
	if c.DownloadOutcomes != nil {
		return c.DownloadOutcomes, nil
	}

	outcomes := make([]rapi.Raw, 0, len(items))
	for _, item := range items {
		outcomes = append(outcomes, rapi.Raw{
			"recordId": item["recordId"],
			"itemId":   item["itemId"],
			"orderId":  item["orderId"],
			"status":   "AVAILABLE_FOR_DOWNLOAD",
			"downloadPaths": []any{
				map[string]any{
					"url":               "https://example.test/file.zip",
					"local_destination": destDir + "/file.zip",
				},
			},
		})
	}
	return outcomes, nil
}
