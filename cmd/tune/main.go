// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Command tune fits the classical evaluator's tapered PST terms against
// a labeled FEN dataset, writing a convergence chart to error-plot.html
// as it goes. It is an offline tool, kept entirely out of the engine's
// search path.
package main

import (
	"fmt"
	"os"

	"github.com/zmeadows/feldspar/pkg/search/eval/classical/tuner"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: tune <dataset.epd>")
		os.Exit(1)
	}

	dataPath := os.Args[1]

	// load dataset
	fmt.Printf("loading dataset: %s\n", dataPath)
	dataset, err := tuner.NewDataset(dataPath)
	if err != nil {
		fmt.Printf("error loading dataset: %v\n", err)
		os.Exit(1)
	}

	// report number of dataset entries
	fmt.Printf("dataset loaded: %d entries\n", len(dataset))

	termTuner := tuner.Tuner{
		Config: tuner.Config{
			KPrecision: 10,

			ReportRate: 50,

			LearningRate:     1,
			LearningDropRate: 1,
			LearningStepRate: 250,

			MaxEpochs: 100_000,
			BatchSize: 2 * 16384,
		},

		Dataset: dataset,
	}

	termTuner.Tune()
}
