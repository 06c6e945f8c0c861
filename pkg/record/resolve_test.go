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

package record_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/rapi/rapitest"
	"github.com/walteh/eodl/pkg/record"
)

var testColls = map[string]rapi.Collection{
	"RCMImageProducts": {ID: "RCMImageProducts", Title: "RCM Image Products"},
	"Radarsat2":        {ID: "Radarsat2", Title: "RADARSAT-2"},
}

func TestResolveRows_SequenceIDs(t *testing.T) {
	client := &rapitest.Client{
		SearchFunc: func(q rapi.SearchQuery) ([]rapi.Raw, error) {
			clause, ok := q.Filters["Sequence Id"]
			require.True(t, ok)
			var out []rapi.Raw
			for _, id := range clause.Values {
				out = append(out, rapi.Raw{"recordId": id, "collectionId": q.Collection})
			}
			return out, nil
		},
	}

	rows := []map[string]string{
		{"Sequence Id": "1", "collectionId": "RCMImageProducts"},
		{"Record Id": "2", "collectionId": "RCMImageProducts"},
	}

	res := record.ResolveRows(context.Background(), client, testColls, rows)
	require.Len(t, res, 2)
	assert.Equal(t, "1", fmt.Sprint(res[0]["recordId"]))
	assert.Equal(t, "2", fmt.Sprint(res[1]["recordId"]))
}

// A row identified only by an order key that matches two catalog records is
// skipped with a warning, not included.
func TestResolveRows_AmbiguousOrderKeySkipped(t *testing.T) {
	client := &rapitest.Client{
		SearchFunc: func(q rapi.SearchQuery) ([]rapi.Raw, error) {
			if _, ok := q.Filters["Order Key"]; ok {
				return []rapi.Raw{
					{"recordId": "50", "collectionId": q.Collection},
					{"recordId": "51", "collectionId": q.Collection},
				}, nil
			}
			return nil, nil
		},
	}

	rows := []map[string]string{
		{"order key": "RCM-ABC", "collectionId": "RCMImageProducts"},
	}

	res := record.ResolveRows(context.Background(), client, testColls, rows)
	assert.Empty(t, res)
}

func TestResolveRows_OrderKeySingleMatch(t *testing.T) {
	client := &rapitest.Client{
		SearchFunc: func(q rapi.SearchQuery) ([]rapi.Raw, error) {
			if _, ok := q.Filters["Order Key"]; ok {
				return []rapi.Raw{{"recordId": "50", "collectionId": q.Collection}}, nil
			}
			return nil, nil
		},
	}

	rows := []map[string]string{
		{"order key": "RCM-ABC", "collectionId": "RCMImageProducts"},
	}

	res := record.ResolveRows(context.Background(), client, testColls, rows)
	require.Len(t, res, 1)
	assert.Equal(t, "50", fmt.Sprint(res[0]["recordId"]))
}

// Matches from every chunk are retained, not only the final chunk's.
func TestResolveRows_AllChunksRetained(t *testing.T) {
	client := &rapitest.Client{
		SearchFunc: func(q rapi.SearchQuery) ([]rapi.Raw, error) {
			clause := q.Filters["Sequence Id"]
			var out []rapi.Raw
			for _, id := range clause.Values {
				out = append(out, rapi.Raw{"recordId": id, "collectionId": q.Collection})
			}
			return out, nil
		},
	}

	var rows []map[string]string
	for i := 0; i < 60; i++ {
		rows = append(rows, map[string]string{
			"Record Id":    fmt.Sprint(i),
			"collectionId": "Radarsat2",
		})
	}

	res := record.ResolveRows(context.Background(), client, testColls, rows)
	require.Len(t, res, 60)

	// Three lookup chunks of at most 25.
	require.Len(t, client.SearchCalls, 3)
}

func TestResolveRows_UnknownCollectionSkipped(t *testing.T) {
	client := &rapitest.Client{}
	rows := []map[string]string{
		{"Record Id": "1", "collectionId": "NotACollection"},
	}

	res := record.ResolveRows(context.Background(), client, testColls, rows)
	assert.Empty(t, res)
	assert.Empty(t, client.SearchCalls)
}
