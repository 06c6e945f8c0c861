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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStr(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string_passthrough", in: "7752919", want: "7752919"},
		{name: "seven_digit_float", in: float64(7752919), want: "7752919"},
		{name: "small_float", in: float64(42), want: "42"},
		{name: "fractional_float", in: 1.5, want: "1.5"},
		{name: "json_number", in: json.Number("7752919"), want: "7752919"},
		{name: "int", in: 103, want: "103"},
		{name: "bool", in: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Str(tt.in))
		})
	}
}
