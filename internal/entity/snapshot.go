package entity

// Snapshot is a read-only copy of a session for external observers.
type Snapshot struct {
	RoundID string   `json:"round_id"`
	Board   []string `json:"board"`
	Turn    string   `json:"turn"`
	Status  Status   `json:"status"`
	Winner  string   `json:"winner,omitempty"`
	Moves   int      `json:"moves"`
}

func NewSnapshot(roundID string, board Board, turn Cell, phase Phase) *Snapshot {
	cells := board.Cells()

	snapshot := &Snapshot{
		RoundID: roundID,
		Board:   make([]string, 0, len(cells)),
		Turn:    turn.String(),
		Status:  phase.Status,
		Moves:   len(cells) - board.Count(Empty),
	}

	for _, cell := range cells {
		if cell == Empty {
			snapshot.Board = append(snapshot.Board, "")
			continue
		}
		snapshot.Board = append(snapshot.Board, cell.String())
	}

	if phase.Status == StatusWon {
		snapshot.Winner = phase.Winner.String()
	}

	if phase.IsOver() {
		snapshot.Turn = ""
	}

	return snapshot
}
