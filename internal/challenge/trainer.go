package challenge

import (
	"github.com/google/uuid"

	"algebramon/internal/gamedata"
)

// RoundOutcome classifies one exchange in a trainer battle.
type RoundOutcome string

const (
	// RoundBothCorrect: both answered right, no score moves.
	RoundBothCorrect RoundOutcome = "both_correct"
	// RoundPlayerScores: player right, opponent wrong.
	RoundPlayerScores RoundOutcome = "player_scores"
	// RoundCountered: player wrong, opponent right. The counter
	// deepens the XP penalty upstream.
	RoundCountered RoundOutcome = "countered"
	// RoundBothMissed: neither answered right.
	RoundBothMissed RoundOutcome = "both_missed"
)

// BattleState is the lifecycle of a trainer battle.
type BattleState string

const (
	BattleOngoing   BattleState = "ongoing"
	BattleWon       BattleState = "won"
	BattleLost      BattleState = "lost"
	BattleForfeited BattleState = "forfeited"
)

// Round is the result of one exchange.
type Round struct {
	Outcome         RoundOutcome
	OpponentCorrect bool
	PlayerWins      int
	WinsNeeded      int
	State           BattleState
}

// TrainerBattle runs until the player lands enough scoring rounds,
// runs out of stamina, or flees. There is no strike limit; the gauge
// is the clock.
type TrainerBattle struct {
	ID       string
	Opponent gamedata.Trainer

	rng        Rand
	playerWins int
	rounds     int
	state      BattleState
}

// NewTrainerBattle starts a battle against the opponent.
func NewTrainerBattle(opponent gamedata.Trainer, rng Rand) *TrainerBattle {
	return &TrainerBattle{
		ID:       uuid.NewString(),
		Opponent: opponent,
		rng:      rng,
		state:    BattleOngoing,
	}
}

// State returns the battle lifecycle state.
func (b *TrainerBattle) State() BattleState { return b.state }

// PlayerWins returns how many scoring rounds the player has landed.
func (b *TrainerBattle) PlayerWins() int { return b.playerWins }

// Rounds returns how many exchanges have been played.
func (b *TrainerBattle) Rounds() int { return b.rounds }

// PlayRound resolves one exchange. The opponent answers correctly with
// probability equal to its skill. staminaAfter is the gauge reading
// once the player's answer has been settled.
func (b *TrainerBattle) PlayRound(playerCorrect bool, staminaAfter int) Round {
	if b.state != BattleOngoing {
		return b.round(RoundOutcome(""), false)
	}

	b.rounds++
	opponentCorrect := b.rng.Float64() < b.Opponent.Skill

	var outcome RoundOutcome
	switch {
	case playerCorrect && opponentCorrect:
		outcome = RoundBothCorrect
	case playerCorrect:
		outcome = RoundPlayerScores
		b.playerWins++
	case opponentCorrect:
		outcome = RoundCountered
	default:
		outcome = RoundBothMissed
	}

	switch {
	case b.playerWins >= b.Opponent.WinsNeeded():
		b.state = BattleWon
	case staminaAfter <= 0:
		b.state = BattleLost
	}

	return b.round(outcome, opponentCorrect)
}

// Forfeit ends the battle in the opponent's favor without a round.
func (b *TrainerBattle) Forfeit() {
	if b.state == BattleOngoing {
		b.state = BattleForfeited
	}
}

func (b *TrainerBattle) round(outcome RoundOutcome, opponentCorrect bool) Round {
	return Round{
		Outcome:         outcome,
		OpponentCorrect: opponentCorrect,
		PlayerWins:      b.playerWins,
		WinsNeeded:      b.Opponent.WinsNeeded(),
		State:           b.state,
	}
}
