// Package model implements the tree water deficit (TWD) recurrence: a
// single-state hourly water balance that tracks the cumulative internal
// water deficit of a tree and derives the relative water content (RWC)
// of its storage pool at each timestep.
package model

import "math"

// DeficitParams are the three scalars of the deficit recurrence. They are
// supplied once and shared read-only across a run.
//
// Numeric domains are the caller's responsibility: FE and FTWD are expected
// in [0,1] and FTheta must be positive (it is used as a divisor), but none
// of this is enforced here. Degenerate values propagate arithmetically as
// Inf/NaN in the outputs rather than being coerced.
type DeficitParams struct {
	// FE is the fraction of transpiration met directly by root uptake.
	FE float64
	// FTWD is the fraction of the standing deficit recoverable per step.
	FTWD float64
	// FTheta is the relative soil moisture above which uptake saturates.
	FTheta float64
}

// PoolParams hold the wood densities used to size the storage pool.
// RhoSat > RhoDry is assumed; the inverse gives a non-positive pool, which
// is degenerate but not rejected.
type PoolParams struct {
	RhoSat float64 // saturated wood density
	RhoDry float64 // oven-dry wood density
}

// SoilLimit maps relative soil moisture to a dimensionless uptake
// limitation factor: min(thetaRel/fTheta, 1). There is no lower clamp, so
// a negative thetaRel yields a negative factor that propagates downstream.
// fTheta == 0 divides by zero.
func SoilLimit(thetaRel, fTheta float64) float64 {
	return math.Min(thetaRel/fTheta, 1)
}

// Uptake estimates the water uptake rate for one step:
//
//	U = (FE*e + FTWD*twdOld) * SoilLimit(thetaRel, FTheta)
//
// Dry soil suppresses both the transpiration-driven and the deficit-driven
// components identically, because the limitation factor multiplies their
// sum. U is not bounded further; with parameters outside [0,1] it may
// exceed e + twdOld.
func Uptake(e, twdOld, thetaRel float64, p DeficitParams) float64 {
	return (p.FE*e + p.FTWD*twdOld) * SoilLimit(thetaRel, p.FTheta)
}

// StepDeficit advances the deficit state by one timestep:
//
//	TWD_new = TWD_old + E - U
//
// The deficit accumulates transpiration not met by uptake and shrinks by
// uptake in excess of transpiration. No floor or ceiling is applied; the
// deficit may go negative (over-recharged) or grow without bound. Clamping
// happens only in RelativeWaterContent.
func StepDeficit(e, twdOld, thetaRel float64, p DeficitParams) float64 {
	return twdOld + e - Uptake(e, twdOld, thetaRel, p)
}

// PoolSize converts dry wood biomass into a storage-pool capacity:
//
//	W = (RhoSat/RhoDry - 1) * mWoodDry
//
// RhoDry == 0 divides by zero. The result is in the same unit as mWoodDry.
// For constant biomass this needs to be computed only once per run.
func PoolSize(mWoodDry float64, p PoolParams) float64 {
	return (p.RhoSat/p.RhoDry - 1) * mWoodDry
}

// RelativeWaterContent converts a deficit and a pool size into a fill
// fraction: max(0, (w-twd)/w). The clamp is asymmetric on purpose: floored
// at 0 when the deficit exceeds the pool, but NOT capped at 1 — a negative
// deficit (over-recharge) yields RWC above 1, which is meaningful output.
// w == 0 divides by zero.
func RelativeWaterContent(w, twd float64) float64 {
	return math.Max(0, (w-twd)/w)
}
