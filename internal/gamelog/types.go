package gamelog

// Record is one game's counting stats plus the result. Records are immutable once
// appended; their only identity is their position in the log.
type Record struct {
	Points   int  `json:"points"`
	Assists  int  `json:"assists"`
	Rebounds int  `json:"rebounds"`
	Blocks   int  `json:"blocks"`
	Steals   int  `json:"steals"`
	Won      bool `json:"won"`
}

// Log is the append-only, oldest-first sequence of game records.
// It is not safe for concurrent use; the owner serialises access.
type Log struct {
	records []Record
}
