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

// Package opts holds the shared dependencies handed to every subcommand.
package opts

import (
	"github.com/walteh/eodl/pkg/config"
	"github.com/walteh/eodl/pkg/log"
	"github.com/walteh/eodl/pkg/operation"
	"github.com/walteh/eodl/pkg/prompt"
	"github.com/walteh/eodl/pkg/rapi"
)

// 🔧 RootOpts carries the initialized dependencies shared by all commands
type RootOpts struct {
	Config     *config.Config
	Client     rapi.Client
	Prompter   prompt.Prompter
	Console    *log.Logger
	UserLogger *log.UserLogger
	Async      bool
}

// 🏭 Operation assembles the operation options for the given request
func (ro *RootOpts) Operation(params operation.Params) operation.Options {
	return operation.Options{
		Config:   ro.Config,
		Client:   ro.Client,
		Prompter: ro.Prompter,
		Console:  ro.Console,
		Params:   params,
	}
}
