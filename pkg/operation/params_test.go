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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMax(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantImages   int
		wantPerOrder int
		wantErr      bool
	}{
		{
			name: "empty_means_no_caps",
			raw:  "",
		},
		{
			name:       "images_only",
			raw:        "2",
			wantImages: 2,
		},
		{
			name:         "images_and_per_order",
			raw:          "100:4",
			wantImages:   100,
			wantPerOrder: 4,
		},
		{
			name:         "per_order_only",
			raw:          ":4",
			wantPerOrder: 4,
		},
		{
			name:    "not_a_number",
			raw:     "lots",
			wantErr: true,
		},
		{
			name:    "negative",
			raw:     "-1",
			wantErr: true,
		},
		{
			name:    "bad_per_order",
			raw:     "2:x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images, perOrder, err := ParseMax(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantImages, images)
			assert.Equal(t, tt.wantPerOrder, perOrder)
		})
	}
}

func TestNormalizePriority(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "Medium", NormalizePriority(ctx, ""))
	assert.Equal(t, "Low", NormalizePriority(ctx, "low"))
	assert.Equal(t, "Urgent", NormalizePriority(ctx, "URGENT"))
	assert.Equal(t, "High", NormalizePriority(ctx, "High"))
	assert.Equal(t, "Medium", NormalizePriority(ctx, "whenever"))
}
