package gamelog

import "fmt"

// MaxStatValue bounds any single category in one game.
const MaxStatValue = 1000

// Validate reports the first category outside [0, MaxStatValue]. The log itself
// accepts any record; input layers call this before appending.
func (r Record) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"points", r.Points},
		{"assists", r.Assists},
		{"rebounds", r.Rebounds},
		{"blocks", r.Blocks},
		{"steals", r.Steals},
	} {
		if f.value < 0 {
			return fmt.Errorf("%s cannot be negative", f.name)
		}
		if f.value > MaxStatValue {
			return fmt.Errorf("%s cannot exceed %d", f.name, MaxStatValue)
		}
	}
	return nil
}
