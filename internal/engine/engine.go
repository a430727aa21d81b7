// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine wires together the search, uci, and option packages
// into a runnable UCI client.
package engine

import (
	"github.com/zmeadows/feldspar/internal/engine/cmd"
	"github.com/zmeadows/feldspar/internal/engine/context"
	"github.com/zmeadows/feldspar/internal/engine/options"
	"github.com/zmeadows/feldspar/pkg/search"
	"github.com/zmeadows/feldspar/pkg/uci"
	"github.com/zmeadows/feldspar/pkg/uci/option"
)

// NewClient creates a new uci.Client set up with every command and
// option the engine supports.
func NewClient() uci.Client {
	client := uci.NewClient()

	engine := &context.Engine{
		Client:       client,
		OptionSchema: option.NewSchema(),
	}

	engine.OptionSchema.AddOption("Hash", options.NewHash(engine))
	engine.OptionSchema.AddOption("Ponder", options.NewPonder(engine))
	engine.OptionSchema.AddOption("Threads", options.NewThreads(engine))

	if err := engine.OptionSchema.SetDefaults(); err != nil {
		panic("engine: failed to set default option values: " + err.Error())
	}

	// fresh search context, reporting iterative-deepening progress
	// straight to the GUI over the same uci.Client
	searchCtx := search.NewContext(func(r search.Report) {
		client.Println(r)
	}, engine.Options.Hash)
	engine.Search = &searchCtx

	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewPonderHit(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewD(engine))

	return client
}
