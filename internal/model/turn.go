package model

// TurnKind labels what produced a TurnResult
type TurnKind string

const (
	TurnKindCommit   TurnKind = "commit"
	TurnKindPass     TurnKind = "pass"
	TurnKindExchange TurnKind = "exchange"
	TurnKindReset    TurnKind = "reset" // stalemate cleared the board
	TurnKindRemote   TurnKind = "remote"
)

// ScoredWord is one validated word of a committed turn
type ScoredWord struct {
	Word       string `json:"word"`
	Score      int    `json:"score"`
	Multiplier int    `json:"multiplier"`
}

// SideScore is a side's cumulative score in a TurnResult
type SideScore struct {
	PlayerID PlayerID `json:"player_id"`
	Score    int      `json:"score"`
}

// TurnResult is the canonical payload emitted after a commit, pass or
// exchange, and accepted from the opponent in remote matches
type TurnResult struct {
	MatchID      MatchID      `json:"match_id"`
	Kind         TurnKind     `json:"kind"`
	Sequence     int          `json:"sequence"`
	PlayerID     PlayerID     `json:"player_id"`
	Board        *Board       `json:"board"`
	Scores       [2]SideScore `json:"scores"`
	NextSide     int          `json:"next_side"`
	NextPlayer   PlayerID     `json:"next_player"`
	BagRemaining int          `json:"bag_remaining"`
	Bag          []Tile       `json:"bag,omitempty"`
	TurnCount    int          `json:"turn_count"`
	PassCount    int          `json:"pass_count"`
	GameOver     bool         `json:"game_over"`
	Winner       PlayerID     `json:"winner,omitempty"`
	Words        []ScoredWord `json:"words,omitempty"`
	ScoreDelta   int          `json:"score_delta"`
	Bingo        int          `json:"bingo,omitempty"`
}
