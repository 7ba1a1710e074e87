package entity

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// IsPlayer reports whether the cell value names one of the two players.
func (that Cell) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent returns the other player. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return "-"
	}
}

// Move addresses a square by row and column, both in [0, Size).
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) inBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}
