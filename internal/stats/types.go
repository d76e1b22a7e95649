package stats

// CareerHighs holds the per-category maximum across all recorded games.
type CareerHighs struct {
	Points   int `json:"points"`
	Assists  int `json:"assists"`
	Rebounds int `json:"rebounds"`
	Blocks   int `json:"blocks"`
	Steals   int `json:"steals"`
}

// Averages holds per-category arithmetic means.
type Averages struct {
	Points   float64 `json:"points"`
	Assists  float64 `json:"assists"`
	Rebounds float64 `json:"rebounds"`
	Blocks   float64 `json:"blocks"`
	Steals   float64 `json:"steals"`
}

// Summary is the season summary. It only exists for a non-empty log.
type Summary struct {
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	Averages Averages `json:"averages"`
}

// Totals holds per-category sums and the number of games they cover.
type Totals struct {
	Points   int `json:"points"`
	Assists  int `json:"assists"`
	Rebounds int `json:"rebounds"`
	Blocks   int `json:"blocks"`
	Steals   int `json:"steals"`
	Games    int `json:"games"`
}
