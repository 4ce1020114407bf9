package sim

import "math"

// Trust evolution parameters.
const (
	honestGrowthFactor = 1.05  // per assigned iteration, capped at the ceiling
	idleDecayFactor    = 0.995 // per unassigned iteration, floored
	basePenaltyFactor  = 0.90  // malicious penalty before escalation
	penaltyStep        = 0.05  // escalation per consecutive malicious acceptance
)

// UpdateTrust applies the trust evolution rule for one iteration's outcome.
// The rule is identical for both domain flavors.
//
// A malicious item that keeps getting accepted is penalized harder each time:
// the penalty factor shrinks by penaltyStep per consecutive acceptance, and
// the score never drops below TrustFloor. An honest accepted item grows toward
// the ceiling and resets its rejection streak. Unassigned items decay slowly
// toward the floor regardless of flavor or flag.
func (w *WorkItem) UpdateTrust(assigned bool) {
	if assigned {
		if w.Malicious {
			w.ConsecutiveRejections++
			penalty := basePenaltyFactor - penaltyStep*float64(w.ConsecutiveRejections)
			w.TrustScore = math.Max(TrustFloor, w.TrustScore*penalty)
		} else {
			w.TrustScore = math.Min(TrustCeiling, w.TrustScore*honestGrowthFactor)
			w.ConsecutiveRejections = 0
		}
		return
	}
	w.TrustScore = math.Max(TrustFloor, w.TrustScore*idleDecayFactor)
}
