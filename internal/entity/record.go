package entity

// ScoreRecord is one row of the scores table: a normalized player name and
// its cumulative win count (draws count as wins for both sides).
type ScoreRecord struct {
	Name  string `db:"name" json:"name"`
	Score int    `db:"score" json:"score"`
}

// HistoryRecord is one completed round. Winner is nil for a draw. Records are
// append-only and their insertion order is the chronological order.
type HistoryRecord struct {
	Player1   string  `db:"player1" json:"player1"`
	Player2   string  `db:"player2" json:"player2"`
	Winner    *string `db:"winner" json:"winner"`
	Timestamp int64   `db:"timestamp" json:"timestamp"`
}
