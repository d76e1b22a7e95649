// Package stats derives career highs, the season summary and totals from a
// snapshot of the game log. Every function is pure and runs in a single pass.
package stats

import "github.com/mauv0809/hoopstats/internal/gamelog"

// ComputeCareerHighs returns the maximum of each category across games. Highs are
// floored at zero, so an empty log yields all zeros.
func ComputeCareerHighs(games []gamelog.Record) CareerHighs {
	var highs CareerHighs
	for _, g := range games {
		highs.Points = max(highs.Points, g.Points)
		highs.Assists = max(highs.Assists, g.Assists)
		highs.Rebounds = max(highs.Rebounds, g.Rebounds)
		highs.Blocks = max(highs.Blocks, g.Blocks)
		highs.Steals = max(highs.Steals, g.Steals)
	}
	return highs
}

// ComputeSummary returns the win/loss record and per-category averages. The second
// return value is false for an empty log, where averages are undefined.
func ComputeSummary(games []gamelog.Record) (Summary, bool) {
	if len(games) == 0 {
		return Summary{}, false
	}

	totals := ComputeTotals(games)
	wins := 0
	for _, g := range games {
		if g.Won {
			wins++
		}
	}

	n := float64(len(games))
	return Summary{
		Wins:   wins,
		Losses: len(games) - wins,
		Averages: Averages{
			Points:   float64(totals.Points) / n,
			Assists:  float64(totals.Assists) / n,
			Rebounds: float64(totals.Rebounds) / n,
			Blocks:   float64(totals.Blocks) / n,
			Steals:   float64(totals.Steals) / n,
		},
	}, true
}

// ComputeTotals returns per-category sums across games; zero for an empty log.
func ComputeTotals(games []gamelog.Record) Totals {
	var t Totals
	for _, g := range games {
		t.Points += g.Points
		t.Assists += g.Assists
		t.Rebounds += g.Rebounds
		t.Blocks += g.Blocks
		t.Steals += g.Steals
	}
	t.Games = len(games)
	return t
}

// Games is the number of games the summary covers.
func (s Summary) Games() int {
	return s.Wins + s.Losses
}

// WinPercentage returns wins as a percentage of games played.
func (s Summary) WinPercentage() float64 {
	return float64(s.Wins) / float64(s.Games()) * 100
}

// Add returns the category-wise sum of t and other.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Points:   t.Points + other.Points,
		Assists:  t.Assists + other.Assists,
		Rebounds: t.Rebounds + other.Rebounds,
		Blocks:   t.Blocks + other.Blocks,
		Steals:   t.Steals + other.Steals,
		Games:    t.Games + other.Games,
	}
}
