package rank

// Standing summarises where a ranked slot sits
type Standing string

const (
	StandingLeading   Standing = "leading"
	StandingTop10     Standing = "top_10"
	StandingOutranked Standing = "outranked"
)

// likelihoodStep maps every rank up to and including MaxRank to Percent.
// Steps are ordered by MaxRank.
type likelihoodStep struct {
	MaxRank int
	Percent float64
}

// winLikelihoodTable is a display heuristic, not a probability model.
var winLikelihoodTable = []likelihoodStep{
	{MaxRank: 1, Percent: 98.5},
	{MaxRank: 2, Percent: 45.0},
	{MaxRank: 3, Percent: 25.0},
	{MaxRank: 10, Percent: 10.0},
}

// beyondTableLikelihood applies to every rank past the last step
const beyondTableLikelihood = 1.0

// WinLikelihood returns the win likelihood bucket, in percent, for a rank.
// Unranked positions (rank <= 0) get 0.
func WinLikelihood(rank int) float64 {
	if rank <= 0 {
		return 0
	}
	for _, step := range winLikelihoodTable {
		if rank <= step.MaxRank {
			return step.Percent
		}
	}
	return beyondTableLikelihood
}

// StandingFor returns the standing label for a rank
func StandingFor(rank int) Standing {
	switch {
	case rank == 1:
		return StandingLeading
	case rank > 1 && rank <= PositionsLimit:
		return StandingTop10
	default:
		return StandingOutranked
	}
}
