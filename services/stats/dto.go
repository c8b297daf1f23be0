package stats

// PlayerStatLine is derived, never stored. It is rebuilt from scratch on
// every aggregation request so it always agrees with the current match set.
type PlayerStatLine struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Matches  int    `json:"matches"`
	Minutes  int    `json:"minutes"`
	Goals    int    `json:"goals"`
	Yellow   int    `json:"yellow"`
	Red      int    `json:"red"`
}

// Options tunes the aggregation edge cases.
type Options struct {
	// CountUnrosteredScorers also credits goals to players that never appear
	// in any playingTime list. The first web client silently dropped those
	// goals; off keeps that behavior.
	CountUnrosteredScorers bool
}
