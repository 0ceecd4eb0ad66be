package leaderboard

import (
	"sort"

	"github.com/apts18o9/leaderboard/internal/domain"
)

// Rank orders participants by score descending and assigns dense ranks with
// shared ties: equal scores share a rank, and the next distinct score gets a
// rank equal to its 1-based position, so scores [50 50 30] rank as [1 1 3].
//
// Ties are broken by participant id so repeated calls over the same input
// produce an identical ordering. The input slice is not modified.
func Rank(participants []domain.Participant) []domain.RankedParticipant {
	sorted := make([]domain.Participant, len(participants))
	copy(sorted, participants)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].ID < sorted[j].ID
	})

	ranked := make([]domain.RankedParticipant, len(sorted))
	currentRank := 1
	for i, p := range sorted {
		if i > 0 && p.Score != sorted[i-1].Score {
			currentRank = i + 1
		}
		ranked[i] = domain.RankedParticipant{Participant: p, Rank: currentRank}
	}

	return ranked
}
