// SPDX-License-Identifier: MIT

// Package fixture holds small, hand-checked datasets shared by tests and examples.
//
// Every fixture is internally consistent: TotalProduction = Yield·Area and
// TotalIncome = NetProfit·Area on every row, so the observed allocation is a
// feasible point of the allocation model.
package fixture

import "github.com/katalvlaran/agroshift/dataset"

// row builds a consistent Row with all seven sustainability indicators set to env.
func row(region, crop string, yield, profit, area, env float64) dataset.Row {
	return dataset.Row{
		Region:          region,
		Crop:            crop,
		Yield:           yield,
		NetProfit:       profit,
		HarvestedArea:   area,
		GreenWater:      env,
		BlueWater:       env,
		GHG:             env,
		Nitrogen:        env,
		Phosphorus:      env,
		Potassium:       env,
		Pesticides:      env,
		TotalProduction: yield * area,
		TotalIncome:     profit * area,
	}
}

// TwoByTwo is two regions {A, B} × two crops {Wheat, Rice}, 100 ha per row.
//
//	        Wheat (yield, profit)   Rice (yield, profit)   env/ha
//	A       10, 5                   10, 3                  1
//	B        4, 2                    8, 6                  2
//
// Maximizing profit gives A:Wheat=0.9, A:Rice=0.1, B:Wheat=0, B:Rice=1 with a
// total profit of 2160: B specializes in rice, A covers the wheat target and
// the remaining rice shortfall (200 kg ⇒ 0.1 of A's 200 ha).
//
// Minimizing any indicator leaves land fallow: A:Wheat=0.7, A:Rice=0.3,
// B:Wheat=0, B:Rice=0.75, realizing 500 of the 600 baseline.
func TwoByTwo() []dataset.Row {
	return []dataset.Row{
		row("A", "Wheat", 10, 5, 100, 1),
		row("A", "Rice", 10, 3, 100, 1),
		row("B", "Wheat", 4, 2, 100, 2),
		row("B", "Rice", 8, 6, 100, 2),
	}
}

// MissingCrop is TwoByTwo without the (A, Rice) row.
//
// The production floors pin the allocation: rice needs B:Rice ≥ 0.5, and
// wheat needs 1000·A:Wheat + 800·B:Wheat ≥ 1400, so B:Wheat ≥ 0.5 even with
// A:Wheat = 1. B's area bound then admits only B:Wheat = B:Rice = 0.5 and
// A:Wheat = 1, with a total profit of 1300.
func MissingCrop() []dataset.Row {
	return []dataset.Row{
		row("A", "Wheat", 10, 5, 100, 1),
		row("B", "Wheat", 4, 2, 100, 2),
		row("B", "Rice", 8, 6, 100, 2),
	}
}

// Sample is a three-region table with uneven indicator profiles and one crop
// missing per region, sized for sweep tests.
func Sample() []dataset.Row {
	rows := []dataset.Row{
		{Region: "North", Crop: "Wheat", Yield: 6000, NetProfit: 420, HarvestedArea: 1200,
			GreenWater: 3500, BlueWater: 600, GHG: 1800, Nitrogen: 140, Phosphorus: 60, Potassium: 40, Pesticides: 2.1},
		{Region: "North", Crop: "Maize", Yield: 9000, NetProfit: 510, HarvestedArea: 800,
			GreenWater: 4200, BlueWater: 900, GHG: 2300, Nitrogen: 190, Phosphorus: 70, Potassium: 55, Pesticides: 3.0},
		{Region: "Central", Crop: "Wheat", Yield: 5200, NetProfit: 380, HarvestedArea: 900,
			GreenWater: 3300, BlueWater: 1100, GHG: 1700, Nitrogen: 120, Phosphorus: 55, Potassium: 35, Pesticides: 1.8},
		{Region: "Central", Crop: "Rice", Yield: 7000, NetProfit: 600, HarvestedArea: 1000,
			GreenWater: 5200, BlueWater: 4800, GHG: 5200, Nitrogen: 170, Phosphorus: 50, Potassium: 60, Pesticides: 2.6},
		{Region: "Central", Crop: "Maize", Yield: 8500, NetProfit: 470, HarvestedArea: 600,
			GreenWater: 4000, BlueWater: 1500, GHG: 2200, Nitrogen: 180, Phosphorus: 65, Potassium: 50, Pesticides: 2.9},
		{Region: "South", Crop: "Rice", Yield: 7600, NetProfit: 650, HarvestedArea: 1400,
			GreenWater: 5600, BlueWater: 5200, GHG: 5600, Nitrogen: 160, Phosphorus: 45, Potassium: 65, Pesticides: 2.4},
		{Region: "South", Crop: "Maize", Yield: 8000, NetProfit: 430, HarvestedArea: 500,
			GreenWater: 3900, BlueWater: 2000, GHG: 2100, Nitrogen: 175, Phosphorus: 62, Potassium: 48, Pesticides: 3.1},
	}
	for i := range rows {
		rows[i].TotalProduction = rows[i].Yield * rows[i].HarvestedArea
		rows[i].TotalIncome = rows[i].NetProfit * rows[i].HarvestedArea
	}

	return rows
}
