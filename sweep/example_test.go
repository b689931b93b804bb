// SPDX-License-Identifier: MIT

package sweep_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/agroshift/allocation"
	"github.com/katalvlaran/agroshift/baseline"
	"github.com/katalvlaran/agroshift/dataset"
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/internal/fixture"
	"github.com/katalvlaran/agroshift/simplex"
	"github.com/katalvlaran/agroshift/sweep"
)

// ExampleRun sweeps all 128 weight vectors and inspects the all-zero one,
// which keeps the observed allocation.
func ExampleRun() {
	ds, _ := dataset.New(fixture.Sample())
	idx, _ := indicator.Build(ds)
	base, _ := baseline.Compute(ds)
	b, _ := allocation.NewBuilder(idx, base)

	rep, err := sweep.Run(context.Background(), simplex.New(), b, sweep.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	zero := rep.Results[0]
	fmt.Println(len(rep.Results), zero.Weights, zero.Status)
	fmt.Printf("objective %.1f score %.1f\n", zero.Objective, zero.Score)
	// Output:
	// 128 0000000 Optimal
	// objective 0.0 score 0.0
}

func ExampleStats() {
	mean, variance, score := sweep.Stats(sweep.Improvements{0, 0, 0, 0, 0, 0, 0.7})
	fmt.Printf("mean %.2f variance %.2f score %.2f\n", mean, variance, score)
	// Output:
	// mean 0.10 variance 0.06 score 1.67
}
