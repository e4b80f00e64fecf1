package domain

type ClientMessage struct {
	Type       string `json:"type"`
	JWT        string `json:"jwt,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	// Color is the side the human wants to play ("black" or "white").
	Color string `json:"color,omitempty"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

type ServerMessage struct {
	Type        string  `json:"type"`
	Message     string  `json:"message,omitempty"`
	GameID      string  `json:"gameId,omitempty"`
	Opponent    string  `json:"opponent,omitempty"`
	YourRole    int     `json:"yourRole,omitempty"`
	CurrentTurn int     `json:"currentTurn,omitempty"`
	Row         *int    `json:"row,omitempty"`
	Col         *int    `json:"col,omitempty"`
	Role        int     `json:"role,omitempty"`
	Board       [][]int `json:"board,omitempty"`
	NextTurn    int     `json:"nextTurn,omitempty"`
	Winner      string  `json:"winner,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MoveMadeMessage builds the broadcast sent after any applied move.
func MoveMadeMessage(g *Game, coord Coordinate, role Role) ServerMessage {
	row, col := coord.Row, coord.Col
	return ServerMessage{
		Type:     "move_made",
		Row:      &row,
		Col:      &col,
		Role:     int(role),
		Board:    g.Board.Rows(),
		NextTurn: int(g.CurrentRole),
	}
}
