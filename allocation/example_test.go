// SPDX-License-Identifier: MIT

package allocation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/agroshift/allocation"
	"github.com/katalvlaran/agroshift/baseline"
	"github.com/katalvlaran/agroshift/dataset"
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/internal/fixture"
	"github.com/katalvlaran/agroshift/simplex"
)

// ExampleSolve maximizes national profit on a two-region, two-crop table.
func ExampleSolve() {
	ds, _ := dataset.New(fixture.TwoByTwo())
	idx, _ := indicator.Build(ds)
	base, _ := baseline.Compute(ds)
	b, _ := allocation.NewBuilder(idx, base)

	out, err := allocation.Solve(context.Background(), simplex.New(), b, allocation.MaxProfit())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Status)
	fmt.Printf("profit %.0f\n", out.Objective)
	for _, pr := range out.Plan().Pairs() {
		fmt.Printf("%-8s %.2f\n", pr, out.Allocation[pr])
	}
	// Output:
	// Optimal
	// profit 2160
	// A_Wheat  0.90
	// A_Rice   0.10
	// B_Wheat  0.00
	// B_Rice   1.00
}
