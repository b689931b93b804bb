// SPDX-License-Identifier: MIT

package allocation

import (
	"strings"

	"github.com/katalvlaran/agroshift/indicator"
)

// NumWeightVectors is the number of distinct weight vectors (2^7).
const NumWeightVectors = 1 << indicator.NumSustainability

// WeightVector selects which sustainability indicators enter the minimization
// objective. Flag i refers to indicator.Sustainability[i].
type WeightVector [indicator.NumSustainability]bool

// FromBits decodes the k-th vector in lexicographic order, where flag 0 is the
// most significant of the low seven bits: 0 → 0000000, 1 → 0000001, ...,
// 127 → 1111111. The high bit of k is ignored.
func FromBits(k uint8) WeightVector {
	var w WeightVector
	for i := range w {
		w[i] = (k>>(indicator.NumSustainability-1-i))&1 == 1
	}

	return w
}

// Bits is the inverse of FromBits.
func (w WeightVector) Bits() uint8 {
	var k uint8
	for _, on := range w {
		k <<= 1
		if on {
			k |= 1
		}
	}

	return k
}

// IsZero reports whether no indicator is selected.
func (w WeightVector) IsZero() bool { return w.Count() == 0 }

// Count is the number of selected indicators.
func (w WeightVector) Count() int {
	n := 0
	for _, on := range w {
		if on {
			n++
		}
	}

	return n
}

// Weight returns flag i as 0 or 1.
func (w WeightVector) Weight(i int) float64 {
	if w[i] {
		return 1
	}

	return 0
}

// String renders the flags as a bit string, e.g. "1010000".
func (w WeightVector) String() string {
	var sb strings.Builder
	sb.Grow(len(w))
	for _, on := range w {
		if on {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
