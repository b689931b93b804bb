// SPDX-License-Identifier: MIT

// Package allocation builds the crop-reallocation linear program and reads its
// solution back.
//
// One decision variable x[r,c] ∈ [0,1] exists for every (region, crop) pair
// present in the data: the fraction of region r's aggregate harvested area
// planted with crop c. Every plan carries the same six constraint families,
// added in this order:
//
//	Production_<crop>                Σ_r x[r,c]·area_r·yield[r,c]        ≥ observed production of c
//	Region_<region>_Total            Σ_c x[r,c]                          ≤ 1
//	Total_Income                     Σ x·area·profit                     ≥ Σ_r observed income_r
//	Income_Constraint_<region>       Σ_c x[r,c]·area_r·profit[r,c]       ≥ observed income_r
//	Total_<indicator>                Σ x·area·indicator                  ≤ national baseline
//	<indicator>_Constraint_<region>  Σ_c x[r,c]·area_r·indicator[r,c]    ≤ regional baseline
//
// Only pairs present in the data contribute terms; a missing pair is neither a
// variable nor a zero coefficient.
//
// The objective is pluggable (see Objective): MaxProfit maximizes national net
// profit, MinWeighted minimizes a 0/1-weighted sum of the seven national
// sustainability totals.
//
// Since every fixture row is internally consistent, the observed allocation
// (x[r,c] = area[r,c] / area_r) satisfies all constraints. Build records it as
// the model hint, which lets a solver return it for objectives with no
// non-zero coefficient.
package allocation
