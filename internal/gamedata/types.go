package gamedata

// Gym is the static configuration for one unit's boss challenge.
type Gym struct {
	Unit        string `json:"unit"`
	Name        string `json:"name"`
	Threshold   int    `json:"threshold"`
	Leader      string `json:"leader"`
	LeaderTitle string `json:"leader_title"`
	Pun         string `json:"pun"`
}

// Trainer is a roaming opponent that answers its own prompts with a
// fixed probability.
type Trainer struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Skill  float64  `json:"skill"`
	Units  []string `json:"units"`
	Flavor string   `json:"flavor"`

	// LossesToLose is how many rounds the player must win to defeat
	// this trainer. Zero means the default of 3.
	LossesToLose int `json:"losses_to_lose"`
}

// StarterOption is one of the companions offered on first run.
type StarterOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Blurb string `json:"blurb"`
}

// DefaultLossesToLose is the defeat threshold for trainers that don't
// override it.
const DefaultLossesToLose = 3

// WinsNeeded returns the effective defeat threshold.
func (t Trainer) WinsNeeded() int {
	if t.LossesToLose > 0 {
		return t.LossesToLose
	}
	return DefaultLossesToLose
}
