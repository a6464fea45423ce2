package game

// Command represents an action a session can perform
type Command interface {
	CommandName() string
}

// PlayRoundCommand deals and evaluates a fresh round
type PlayRoundCommand struct{}

func (c PlayRoundCommand) CommandName() string { return "play-round" }

// CompareHandsCommand evaluates two hands given as card tokens
type CompareHandsCommand struct {
	Black []string `json:"black"`
	White []string `json:"white"`
}

func (c CompareHandsCommand) CommandName() string { return "compare-hands" }
