package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mww/league_engine/model"
)

var (
	ErrMatchAlreadyDecided  = errors.New("bracket match already has a winner")
	ErrRoundIncomplete      = errors.New("bracket round is not complete")
	ErrRoundAlreadyAdvanced = errors.New("bracket round has already been advanced")
)

// GenerateBracket seeds a single-elimination bracket from a ranked team
// list. The caller is responsible for ranking: the list order is the seed
// order, and this function applies no tiebreakers of its own.
//
// Round 1 pairs seed i against seed (size+1-i) where size is the bracket
// padded up to a power of two; opponents past the qualified count are byes
// occupying real round-1 slots with an implicit winner. Later rounds are
// pre-allocated empty shells filled in by AdvanceRound or SubmitRoundSlots.
func GenerateBracket(rankedTeams []model.Team, bracketSize int, policy model.SeedingPolicy) (*model.Bracket, error) {
	if bracketSize < 2 {
		return nil, fmt.Errorf("bracket size must be at least 2, got %d", bracketSize)
	}
	if bracketSize > len(rankedTeams) {
		return nil, fmt.Errorf("bracket size %d exceeds the %d ranked teams", bracketSize, len(rankedTeams))
	}
	switch policy {
	case model.SEEDING_FIXED, model.SEEDING_RESEED, model.SEEDING_MANUAL:
	default:
		return nil, fmt.Errorf("%s is not a supported seeding policy", policy)
	}

	qualified := rankedTeams[:bracketSize]

	padded := 2
	rounds := 1
	for padded < bracketSize {
		padded *= 2
		rounds++
	}

	b := &model.Bracket{
		Size:   bracketSize,
		Policy: policy,
		Rounds: make([]model.BracketRound, rounds),
	}

	first := model.BracketRound{
		Name:    roundName(padded, padded),
		Matches: make([]model.BracketNode, padded/2),
	}
	for i := 0; i < padded/2; i++ {
		seed1 := i + 1
		seed2 := padded - i
		node := model.BracketNode{
			Seed1: seed1,
			Team1: qualified[seed1-1].ID,
		}
		if seed2 <= bracketSize {
			node.Seed2 = seed2
			node.Team2 = qualified[seed2-1].ID
		} else {
			// The top seeds draw the byes when the field doesn't fill the
			// power-of-two bracket.
			node.IsBye = true
			node.WinnerTeamID = node.Team1
		}
		first.Matches[i] = node
	}
	b.Rounds[0] = first

	remaining := padded / 2
	for r := 1; r < rounds; r++ {
		b.Rounds[r] = model.BracketRound{
			Name:    roundName(remaining, padded),
			Matches: make([]model.BracketNode, remaining/2),
		}
		remaining /= 2
	}

	return b, nil
}

// roundName names a round by how many teams remain: Championship,
// Semifinals, and Quarterfinals for the last three, "Round N" counted from
// the front of the bracket for anything earlier.
func roundName(remaining, bracketSize int) string {
	switch remaining {
	case 2:
		return "Championship"
	case 4:
		return "Semifinals"
	case 8:
		return "Quarterfinals"
	default:
		round := 1
		for n := bracketSize; n > remaining; n /= 2 {
			round++
		}
		return fmt.Sprintf("Round %d", round)
	}
}

// RecordWinner writes the result of one bracket match and returns a new
// bracket value; the input is never mutated. The winner must be one of the
// two teams in the slot, the slot must be fully populated, and a decided
// match cannot be re-decided.
func RecordWinner(b *model.Bracket, round, slot int, winnerID string, score1, score2 float64) (*model.Bracket, error) {
	if round < 0 || round >= len(b.Rounds) {
		return nil, fmt.Errorf("round %d is out of range", round)
	}
	if slot < 0 || slot >= len(b.Rounds[round].Matches) {
		return nil, fmt.Errorf("slot %d is out of range for round %d", slot, round)
	}

	node := b.Rounds[round].Matches[slot]
	if node.IsBye {
		return nil, fmt.Errorf("slot %d in round %d is a bye", slot, round)
	}
	if node.Team1 == "" || node.Team2 == "" {
		return nil, fmt.Errorf("slot %d in round %d is not populated yet", slot, round)
	}
	if node.WinnerTeamID != "" {
		return nil, ErrMatchAlreadyDecided
	}
	if winnerID != node.Team1 && winnerID != node.Team2 {
		return nil, fmt.Errorf("team %s is not in round %d slot %d", winnerID, round, slot)
	}

	next := b.Clone()
	next.Rounds[round].Matches[slot].Score1 = score1
	next.Rounds[round].Matches[slot].Score2 = score2
	next.Rounds[round].Matches[slot].WinnerTeamID = winnerID
	return next, nil
}

// AdvanceRound fills the next round's slots from a completed round and
// returns a new bracket value. With the fixed policy advancement is purely
// positional; with reseed the remaining winners are re-sorted by original
// seed and re-paired best against worst. Manual brackets must use
// SubmitRoundSlots instead.
//
// Advancing the final round crowns the champion.
func AdvanceRound(b *model.Bracket, round int) (*model.Bracket, error) {
	if b.Policy == model.SEEDING_MANUAL {
		return nil, errors.New("manual brackets advance via SubmitRoundSlots")
	}
	if round < 0 || round >= len(b.Rounds) {
		return nil, fmt.Errorf("round %d is out of range", round)
	}
	if !b.Rounds[round].Complete() {
		return nil, ErrRoundIncomplete
	}

	winners := roundWinners(&b.Rounds[round])

	if round == len(b.Rounds)-1 {
		if b.ChampionID != "" {
			return nil, ErrRoundAlreadyAdvanced
		}
		next := b.Clone()
		next.ChampionID = winners[0].team
		return next, nil
	}

	if populated(&b.Rounds[round+1]) {
		return nil, ErrRoundAlreadyAdvanced
	}

	if b.Policy == model.SEEDING_RESEED {
		slices.SortFunc(winners, func(a, b seededTeam) int { return a.seed - b.seed })
		n := len(winners)
		paired := make([]seededTeam, 0, n)
		for i := 0; i < n/2; i++ {
			paired = append(paired, winners[i], winners[n-1-i])
		}
		winners = paired
	}

	next := b.Clone()
	for i := 0; i+1 < len(winners); i += 2 {
		next.Rounds[round+1].Matches[i/2] = model.BracketNode{
			Seed1: winners[i].seed,
			Team1: winners[i].team,
			Seed2: winners[i+1].seed,
			Team2: winners[i+1].team,
		}
	}
	return next, nil
}

// SubmitRoundSlots assembles a round from explicit team pairings, the
// commissioner's-choice alternative to automatic seeding. Round 1 may pair
// the qualified teams arbitrarily (a pair with an empty second side is a
// bye); later rounds must pair exactly the winners of the previous round.
// Every eligible team has to appear in exactly one slot, so a manually
// assembled round is structurally as valid as an automatically seeded one.
func SubmitRoundSlots(b *model.Bracket, round int, pairs [][2]string) (*model.Bracket, error) {
	if round < 0 || round >= len(b.Rounds) {
		return nil, fmt.Errorf("round %d is out of range", round)
	}
	if len(pairs) != len(b.Rounds[round].Matches) {
		return nil, fmt.Errorf("round %d needs %d pairings, got %d", round, len(b.Rounds[round].Matches), len(pairs))
	}

	var eligible []seededTeam
	if round == 0 {
		for _, m := range b.Rounds[0].Matches {
			if m.WinnerTeamID != "" && !m.IsBye {
				return nil, errors.New("round 1 already has results and cannot be reassigned")
			}
		}
		eligible = roundEntrants(&b.Rounds[0])
	} else {
		if !b.Rounds[round-1].Complete() {
			return nil, ErrRoundIncomplete
		}
		if populated(&b.Rounds[round]) {
			return nil, ErrRoundAlreadyAdvanced
		}
		eligible = roundWinners(&b.Rounds[round-1])
	}

	seeds := make(map[string]int, len(eligible))
	for _, e := range eligible {
		seeds[e.team] = e.seed
	}

	assigned := make(map[string]bool, len(eligible))
	matches := make([]model.BracketNode, len(pairs))
	for i, pair := range pairs {
		if pair[0] == "" {
			return nil, fmt.Errorf("pairing %d has no first team", i)
		}
		for _, id := range []string{pair[0], pair[1]} {
			if id == "" {
				continue
			}
			if _, ok := seeds[id]; !ok {
				return nil, fmt.Errorf("team %s is not eligible for round %d", id, round)
			}
			if assigned[id] {
				return nil, fmt.Errorf("team %s is assigned to more than one slot", id)
			}
			assigned[id] = true
		}

		node := model.BracketNode{
			Seed1: seeds[pair[0]],
			Team1: pair[0],
		}
		if pair[1] == "" {
			node.IsBye = true
			node.WinnerTeamID = pair[0]
		} else {
			node.Seed2 = seeds[pair[1]]
			node.Team2 = pair[1]
		}
		matches[i] = node
	}

	if len(assigned) != len(eligible) {
		return nil, fmt.Errorf("round %d must place all %d teams, only %d assigned", round, len(eligible), len(assigned))
	}

	next := b.Clone()
	next.Rounds[round].Matches = matches
	return next, nil
}

type seededTeam struct {
	seed int
	team string
}

func roundWinners(r *model.BracketRound) []seededTeam {
	winners := make([]seededTeam, 0, len(r.Matches))
	for _, m := range r.Matches {
		w := seededTeam{team: m.WinnerTeamID}
		if m.WinnerTeamID == m.Team1 {
			w.seed = m.Seed1
		} else {
			w.seed = m.Seed2
		}
		winners = append(winners, w)
	}
	return winners
}

func roundEntrants(r *model.BracketRound) []seededTeam {
	entrants := make([]seededTeam, 0, 2*len(r.Matches))
	for _, m := range r.Matches {
		if m.Team1 != "" {
			entrants = append(entrants, seededTeam{seed: m.Seed1, team: m.Team1})
		}
		if m.Team2 != "" {
			entrants = append(entrants, seededTeam{seed: m.Seed2, team: m.Team2})
		}
	}
	return entrants
}

func populated(r *model.BracketRound) bool {
	for _, m := range r.Matches {
		if m.Team1 != "" || m.Team2 != "" {
			return true
		}
	}
	return false
}
