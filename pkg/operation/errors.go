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

import "gitlab.com/tozd/go/errors"

// Fatal condition sentinels. Skipped filter entries, skipped CSV rows and
// failed batches are warnings, not errors; these fire only when a stage is
// left with nothing to work on.
var (
	// ErrEmptyResult means a search produced zero records.
	ErrEmptyResult = errors.New("no results found")
	// ErrNoUsableInput means every input entry was skipped or invalid.
	ErrNoUsableInput = errors.New("no usable input")
)
