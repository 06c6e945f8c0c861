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

package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		fallback bool
		want     bool
	}{
		{name: "yes", answer: "y\n", fallback: false, want: true},
		{name: "yes_word", answer: "yes\n", fallback: false, want: true},
		{name: "no", answer: "n\n", fallback: true, want: false},
		{name: "no_word", answer: "no\n", fallback: true, want: false},
		{name: "bare_enter_proceeds_when_default_yes", answer: "\n", fallback: true, want: true},
		{name: "bare_enter_declines_when_default_no", answer: "\n", fallback: false, want: false},
		{name: "noise_takes_fallback", answer: "eh\n", fallback: true, want: true},
		{name: "noise_takes_fallback_no", answer: "eh\n", fallback: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &Console{In: strings.NewReader(tt.answer), Out: &out}

			got, err := c.Confirm("Proceed with ordering?", tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "(y/n):")
		})
	}
}

func TestSilent_ConfirmIsFixed(t *testing.T) {
	got, err := Silent{}.Confirm("anything", true)
	require.NoError(t, err)
	assert.False(t, got, "silent mode answers with its fixed default, not the question's")
}
