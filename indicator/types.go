// SPDX-License-Identifier: MIT

package indicator

import (
	"errors"

	"github.com/katalvlaran/agroshift/dataset"
)

// ErrNilDataset is returned by Build when no dataset is supplied.
var ErrNilDataset = errors.New("indicator: nil dataset")

// Kind enumerates the per-hectare indicators carried by the Index.
type Kind int

const (
	Yield Kind = iota
	NetProfit
	HarvestedArea
	GreenWater
	BlueWater
	GHG
	Nitrogen
	Phosphorus
	Potassium
	Pesticides

	numKinds
)

// NumSustainability is the number of sustainability indicators.
const NumSustainability = 7

// Sustainability lists the indicators that are capped by their baseline and
// may enter the minimization objective, in sweep order.
var Sustainability = [NumSustainability]Kind{
	BlueWater,
	GreenWater,
	GHG,
	Phosphorus,
	Nitrogen,
	Potassium,
	Pesticides,
}

var kindNames = [numKinds]string{
	Yield:         "Yield",
	NetProfit:     "Net_Profit",
	HarvestedArea: "Harvested_Area",
	GreenWater:    "Green_Water",
	BlueWater:     "Blue_Water",
	GHG:           "GHG",
	Nitrogen:      "Nitrogen",
	Phosphorus:    "Phosphorus",
	Potassium:     "Potassium",
	Pesticides:    "Pesticides",
}

// String returns an identifier-safe name used in constraint and column names.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Unknown"
	}

	return kindNames[k]
}

// Valid reports whether k is a known indicator kind.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// Of returns the value of indicator k stored on row r.
func Of(r dataset.Row, k Kind) float64 {
	switch k {
	case Yield:
		return r.Yield
	case NetProfit:
		return r.NetProfit
	case HarvestedArea:
		return r.HarvestedArea
	case GreenWater:
		return r.GreenWater
	case BlueWater:
		return r.BlueWater
	case GHG:
		return r.GHG
	case Nitrogen:
		return r.Nitrogen
	case Phosphorus:
		return r.Phosphorus
	case Potassium:
		return r.Potassium
	case Pesticides:
		return r.Pesticides
	default:
		return 0
	}
}

// Pair identifies one region–crop combination.
type Pair struct {
	Region string
	Crop   string
}

func (p Pair) String() string { return p.Region + "_" + p.Crop }
