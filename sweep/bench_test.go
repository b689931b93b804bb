// SPDX-License-Identifier: MIT

package sweep_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/agroshift/internal/fixture"
	"github.com/katalvlaran/agroshift/simplex"
	"github.com/katalvlaran/agroshift/sweep"
)

func BenchmarkRun(b *testing.B) {
	builder := mustBuilder(b, fixture.Sample())
	solver := simplex.New()
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := sweep.Run(context.Background(), solver, builder, sweep.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
