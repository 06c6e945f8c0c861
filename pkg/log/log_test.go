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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/record"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_image_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogImageOperation(context.Background(), ImageOperation{
					RecordID:     "123",
					CollectionID: "RCMImageProducts",
					Status:       "AVAILABLE_FOR_DOWNLOAD",
				})
			},
			wantLogs: []string{
				"✓ 123          RCMImageProducts AVAILABLE_FOR_DOWNLOAD",
			},
		},
		{
			name: "log_failed_image_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogImageOperation(context.Background(), ImageOperation{
					RecordID:     "456",
					CollectionID: "NAPL",
					Status:       "EXPIRED",
					Failed:       true,
				})
			},
			wantLogs: []string{
				"✗ 456          NAPL         EXPIRED",
			},
		},
		{
			name: "log_stage",
			op: func(t *testing.T, logger *Logger) {
				logger.StartStage(context.Background(), StageOperation{
					Name:   "ordering",
					Detail: "2 records",
				})
			},
			wantLogs: []string{
				"◆ ordering • 2 records",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("searching collections")
			},
			wantLogs: []string{
				"eodl • searching collections",
			},
		},
		{
			name: "geometry_report",
			op: func(t *testing.T, logger *Logger) {
				logger.GeometryReport(context.Background(), []GeometryLine{
					{RecordID: "123", CollectionID: "NAPL", WKT: "POINT (-75 45)"},
				})
			},
			wantLogs: []string{
				"Geometry of 1 exported images:",
				"123          NAPL         POINT (-75 45)",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.InfoLevel)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestDownloadReport(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	recs := record.NewSet()
	recs.IngestRaw([]rapi.Raw{
		{"recordId": "10", "collectionId": "RCMImageProducts"},
		{"recordId": "11", "collectionId": "RCMImageProducts"},
	})
	recs.Get("10").SetMetadata("orderId", "900")
	recs.UpdateDownloads([]rapi.Raw{
		{
			"recordId": "10",
			"itemId":   "item-1",
			"status":   "AVAILABLE_FOR_DOWNLOAD",
			"downloadPaths": []rapi.Raw{
				{"local_destination": "downloads/a.zip", "url": "https://data.example/a.zip"},
			},
		},
		{
			"recordId":      "11",
			"itemId":        "item-2",
			"status":        "EXPIRED",
			"statusMessage": "order expired",
		},
	})

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.InfoLevel)
	logger.DownloadReport(context.Background(), recs)

	out := buf.String()
	assert.Contains(t, out, "1 images successfully downloaded:")
	assert.Contains(t, out, "Record ID: 10")
	assert.Contains(t, out, "Order Item ID: item-1")
	assert.Contains(t, out, "Order ID: 900")
	assert.Contains(t, out, "Downloaded File: downloads/a.zip")
	assert.Contains(t, out, "Source URL: https://data.example/a.zip")
	assert.Contains(t, out, "1 images failed to download:")
	assert.Contains(t, out, "Record ID: 11")
	assert.Contains(t, out, "Status: EXPIRED")
	assert.Contains(t, out, "Status Message: order expired")
}
