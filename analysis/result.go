package analysis

import (
	"math"
)

// EquityResult is one player's share of an odds calculation.
type EquityResult struct {
	Wins   uint64
	Ties   uint64
	Losses uint64
	Total  uint64
}

// WinRate returns the fraction of boards won outright (0.0 to 1.0).
func (e EquityResult) WinRate() float64 {
	if e.Total == 0 {
		return 0.0
	}
	return float64(e.Wins) / float64(e.Total)
}

// TieRate returns the fraction of boards split (0.0 to 1.0).
func (e EquityResult) TieRate() float64 {
	if e.Total == 0 {
		return 0.0
	}
	return float64(e.Ties) / float64(e.Total)
}

// LossRate returns the fraction of boards lost (0.0 to 1.0).
func (e EquityResult) LossRate() float64 {
	if e.Total == 0 {
		return 0.0
	}
	return float64(e.Losses) / float64(e.Total)
}

// Equity returns wins plus half of ties over the total (0.0 to 1.0).
func (e EquityResult) Equity() float64 {
	if e.Total == 0 {
		return 0.0
	}
	return (float64(e.Wins) + float64(e.Ties)*0.5) / float64(e.Total)
}

// ConfidenceInterval returns the 95% interval for Equity. It is only
// meaningful for sampled results; exhaustive results are exact.
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	if e.Total == 0 {
		return 0.0, 0.0
	}
	equity := e.Equity()
	se := math.Sqrt((equity * (1.0 - equity)) / float64(e.Total))
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

// OddsResult holds per-player tallies over every board considered. For each
// player Wins+Ties+Losses == Total.
type OddsResult struct {
	Wins   []uint64
	Ties   []uint64
	Losses []uint64
	Total  uint64
	// Sampled is set when the boards were drawn at random.
	Sampled bool
}

func newOddsResult(players int) *OddsResult {
	return &OddsResult{
		Wins:   make([]uint64, players),
		Ties:   make([]uint64, players),
		Losses: make([]uint64, players),
	}
}

// Player returns player i's tallies.
func (r *OddsResult) Player(i int) EquityResult {
	return EquityResult{
		Wins:   r.Wins[i],
		Ties:   r.Ties[i],
		Losses: r.Losses[i],
		Total:  r.Total,
	}
}

// Players returns the number of pockets in the result.
func (r *OddsResult) Players() int {
	return len(r.Wins)
}
