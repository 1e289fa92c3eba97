package scoring

import "sort"

// Standing is one team's position in the ranking.
type Standing struct {
	TeamID     string `json:"teamId"`
	TotalScore int    `json:"totalScore"`
	Rank       int    `json:"rank"`
}

// Rank orders standings by TotalScore descending and assigns 1-based ranks.
//
// Ties keep their input order, so callers pass standings in store order
// (oldest team first). The input slice is not modified. Rank(Rank(x)) == Rank(x).
func Rank(standings []Standing) []Standing {
	ranked := make([]Standing, len(standings))
	copy(ranked, standings)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Changed returns the standings in ranked whose rank differs from before,
// keyed by TeamID. It lets callers persist only what moved.
func Changed(before, ranked []Standing) []Standing {
	prev := make(map[string]int, len(before))
	for _, s := range before {
		prev[s.TeamID] = s.Rank
	}

	var changed []Standing
	for _, s := range ranked {
		if r, ok := prev[s.TeamID]; !ok || r != s.Rank {
			changed = append(changed, s)
		}
	}
	return changed
}
