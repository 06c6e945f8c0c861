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

package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/eodl/pkg/config"
	"github.com/walteh/eodl/pkg/log"
	"github.com/walteh/eodl/pkg/prompt"
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/rapi/rapitest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Downloads: t.TempDir(),
		Results:   t.TempDir(),
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func fixedNow() time.Time {
	return time.Date(2021, 1, 5, 5, 45, 40, 0, time.UTC)
}

// yesPrompter always confirms.
type yesPrompter struct{}

func (yesPrompter) Confirm(msg string, fallback bool) (bool, error) { return true, nil }
func (yesPrompter) Input(msg string) (string, error)                { return "", nil }

func twoCollections() map[string]rapi.Collection {
	return map[string]rapi.Collection{
		"RCMImageProducts": {ID: "RCMImageProducts", Title: "RCM Image Products"},
		"NAPL":             {ID: "NAPL", Title: "National Air Photo Library"},
	}
}

func recordIDs(records []rapi.Raw) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r["recordId"].(string))
	}
	return ids
}

func TestFullOperation_CapTrimsAcrossCollections(t *testing.T) {
	client := &rapitest.Client{
		Collections: twoCollections(),
		SearchResults: map[string][]rapi.Raw{
			"RCMImageProducts": {
				{"recordId": "1", "collectionId": "RCMImageProducts"},
				{"recordId": "2", "collectionId": "RCMImageProducts"},
			},
			"NAPL": {
				{"recordId": "3", "collectionId": "NAPL"},
			},
		},
	}

	cfg := testConfig(t)
	op, err := NewFullOperation(Options{
		Config:   cfg,
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Collections: []string{"RCMImageProducts", "NAPL"},
			Maximum:     "2",
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	// The cap keeps the first 2 records overall, in original order.
	require.Len(t, client.OrderCalls, 1)
	assert.Equal(t, []string{"1", "2"}, recordIDs(client.OrderCalls[0]))

	// The download stage ran for the ordered items only.
	require.Len(t, client.DownloadCalls, 1)
	assert.Len(t, client.DownloadCalls[0], 2)

	// Results were exported under the run stamp.
	_, err = os.Stat(filepath.Join(cfg.Results, "20210105_054540_Results.csv"))
	assert.NoError(t, err)
}

func TestFullOperation_ConsoleProgress(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	client := &rapitest.Client{
		Collections: twoCollections(),
		SearchResults: map[string][]rapi.Raw{
			"RCMImageProducts": {
				{
					"recordId":     "1",
					"collectionId": "RCMImageProducts",
					"geometry": map[string]any{
						"type":        "Point",
						"coordinates": []any{float64(-75), float64(45)},
					},
				},
			},
		},
	}

	buf := &bytes.Buffer{}
	op, err := NewFullOperation(Options{
		Config:   testConfig(t),
		Client:   client,
		Prompter: yesPrompter{},
		Console:  log.New(buf, zerolog.InfoLevel),
		Params: Params{
			Collections: []string{"RCMImageProducts"},
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	out := buf.String()
	// One progress line per image in the ordering and download stages.
	assert.Contains(t, out, "✓ 1            RCMImageProducts SUBMITTED")
	assert.Contains(t, out, "✓ 1            RCMImageProducts AVAILABLE_FOR_DOWNLOAD")
	// The exported geometry lands in the closing report.
	assert.Contains(t, out, "Geometry of 1 exported images:")
	assert.Contains(t, out, "POINT (-75 45)")
}

func TestFullOperation_MaxPerOrderBatches(t *testing.T) {
	records := make([]rapi.Raw, 0, 5)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		records = append(records, rapi.Raw{"recordId": id, "collectionId": "RCMImageProducts"})
	}
	client := &rapitest.Client{
		Collections:   twoCollections(),
		SearchResults: map[string][]rapi.Raw{"RCMImageProducts": records},
	}

	op, err := NewFullOperation(Options{
		Config:   testConfig(t),
		Client:   client,
		Prompter: yesPrompter{},
		Params: Params{
			Collections: []string{"RCMImageProducts"},
			Maximum:     ":2",
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	// 5 records with a cap of 2 per order means 3 calls of 2, 2 and 1.
	require.Len(t, client.OrderCalls, 3)
	assert.Len(t, client.OrderCalls[0], 2)
	assert.Len(t, client.OrderCalls[1], 2)
	assert.Len(t, client.OrderCalls[2], 1)

	// Every record was ordered exactly once.
	seen := map[string]int{}
	for _, call := range client.OrderCalls {
		for _, id := range recordIDs(call) {
			seen[id]++
		}
	}
	assert.Len(t, seen, 5)
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %s ordered more than once", id)
	}
}

func TestFullOperation_DeclinedConfirmExitsCleanly(t *testing.T) {
	client := &rapitest.Client{
		Collections: twoCollections(),
		SearchResults: map[string][]rapi.Raw{
			"RCMImageProducts": {{"recordId": "1", "collectionId": "RCMImageProducts"}},
		},
	}

	cfg := testConfig(t)
	op, err := NewFullOperation(Options{
		Config:   cfg,
		Client:   client,
		Prompter: prompt.Silent{}, // declines by default
		Params: Params{
			Collections: []string{"RCMImageProducts"},
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	// Nothing ordered, but the search results were still exported.
	assert.Empty(t, client.OrderCalls)
	_, err = os.Stat(filepath.Join(cfg.Results, "20210105_054540_Results.csv"))
	assert.NoError(t, err)
}

func TestFullOperation_EmptySearchIsFatal(t *testing.T) {
	client := &rapitest.Client{Collections: twoCollections()}

	op, err := NewFullOperation(Options{
		Config:   testConfig(t),
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Collections: []string{"RCMImageProducts"},
			Maximum:     "2",
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	err = op.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.Empty(t, client.OrderCalls)
}

func TestFullOperation_CancelAfterSearchStillExports(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	client := &rapitest.Client{Collections: twoCollections()}
	client.SearchFunc = func(q rapi.SearchQuery) ([]rapi.Raw, error) {
		cancel() // interrupt arrives while searching
		return []rapi.Raw{{"recordId": "1", "collectionId": "RCMImageProducts"}}, nil
	}

	cfg := testConfig(t)
	op, err := NewFullOperation(Options{
		Config:   cfg,
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Collections: []string{"RCMImageProducts"},
			Maximum:     "2",
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	err = op.Execute(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// No ordering happened, but the accumulated results still got written.
	assert.Empty(t, client.OrderCalls)
	_, err = os.Stat(filepath.Join(cfg.Results, "20210105_054540_Results.csv"))
	assert.NoError(t, err)
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	data := ""
	for _, l := range lines {
		data += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestDownloadOnly_NoExistingOrdersSilentExit(t *testing.T) {
	client := &rapitest.Client{Collections: twoCollections()}

	cfg := testConfig(t)
	op, err := NewDownloadOnlyOperation(Options{
		Config:   cfg,
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Input: writeCSV(t,
				"recordId,collectionId",
				"21,RCMImageProducts",
			),
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	// Zero existing orders in silent mode is a terminal, non-error exit.
	require.NoError(t, op.Execute(context.Background()))

	assert.Empty(t, client.OrderCalls, "no new orders may be placed")
	assert.Empty(t, client.DownloadCalls, "nothing may be downloaded")

	// Current results were exported before exiting.
	_, err = os.Stat(filepath.Join(cfg.Results, "20210105_054540_Results.csv"))
	assert.NoError(t, err)
}

func TestDownloadOnly_ExistingOrdersDownloaded(t *testing.T) {
	client := &rapitest.Client{
		Collections: twoCollections(),
		ExistingOrders: []rapi.Raw{
			{"recordId": "21", "collectionId": "RCMImageProducts", "orderId": "900", "itemId": "1"},
		},
	}

	op, err := NewDownloadOnlyOperation(Options{
		Config:   testConfig(t),
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Input: writeCSV(t,
				"recordId,collectionId",
				"21,RCMImageProducts",
			),
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	assert.Empty(t, client.OrderCalls)
	require.Len(t, client.DownloadCalls, 1)
	assert.Len(t, client.DownloadCalls[0], 1)
}

func TestOrderCSV_ResolvesRowsBeforeOrdering(t *testing.T) {
	client := &rapitest.Client{Collections: twoCollections()}
	client.SearchFunc = func(q rapi.SearchQuery) ([]rapi.Raw, error) {
		return []rapi.Raw{
			{"recordId": "31", "collectionId": q.Collection, "sequenceId": "31"},
		}, nil
	}

	op, err := NewOrderCSVOperation(Options{
		Config:   testConfig(t),
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Input: writeCSV(t,
				"Sequence Id,Collection Id",
				"31,RCMImageProducts",
			),
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	require.Len(t, client.OrderCalls, 1)
	assert.Equal(t, []string{"31"}, recordIDs(client.OrderCalls[0]))
	require.Len(t, client.DownloadCalls, 1)
}

func TestSearchOnly_StopsBeforeOrdering(t *testing.T) {
	client := &rapitest.Client{
		Collections: twoCollections(),
		SearchResults: map[string][]rapi.Raw{
			"NAPL": {{"recordId": "41", "collectionId": "NAPL"}},
		},
	}

	cfg := testConfig(t)
	op, err := NewSearchOnlyOperation(Options{
		Config:   cfg,
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Collections: []string{"NAPL"},
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	assert.Empty(t, client.OrderCalls)
	assert.Empty(t, client.DownloadCalls)
	_, err = os.Stat(filepath.Join(cfg.Results, "20210105_054540_Results.csv"))
	assert.NoError(t, err)
}

func TestDownloadAOI_UsesExistingOrders(t *testing.T) {
	client := &rapitest.Client{
		Collections: twoCollections(),
		SearchResults: map[string][]rapi.Raw{
			"RCMImageProducts": {{"recordId": "51", "collectionId": "RCMImageProducts"}},
		},
		ExistingOrders: []rapi.Raw{
			{"recordId": "51", "collectionId": "RCMImageProducts", "orderId": "901", "itemId": "7"},
		},
	}

	op, err := NewDownloadAOIOperation(Options{
		Config:   testConfig(t),
		Client:   client,
		Prompter: prompt.Silent{},
		Params: Params{
			Collections: []string{"RCMImageProducts"},
			AOI:         "POLYGON ((-75 45, -74 45, -74 46, -75 45))",
		},
		Now: fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	// Existing orders were used; no new order was placed.
	assert.Empty(t, client.OrderCalls)
	require.Len(t, client.DownloadCalls, 1)

	// The AOI travelled to the search as an INTERSECTS feature.
	require.Len(t, client.SearchCalls, 1)
	require.Len(t, client.SearchCalls[0].Features, 1)
	assert.Equal(t, "INTERSECTS", client.SearchCalls[0].Features[0].Op)
}

func TestNewBaseOperation_Validation(t *testing.T) {
	_, err := NewFullOperation(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	_, err = NewFullOperation(Options{Config: testConfig(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client is required")
}

func TestRunnerAsync(t *testing.T) {
	client := &rapitest.Client{
		Collections: twoCollections(),
		SearchResults: map[string][]rapi.Raw{
			"NAPL": {{"recordId": "61", "collectionId": "NAPL"}},
		},
	}

	op, err := NewSearchOnlyOperation(Options{
		Config:   testConfig(t),
		Client:   client,
		Prompter: prompt.Silent{},
		Params:   Params{Collections: []string{"NAPL"}},
		Now:      fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, NewRunner(true).Run(context.Background(), op))
	assert.Len(t, client.SearchCalls, 1)
}
