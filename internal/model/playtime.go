package model

import "math"

// PointsPerMinute is the assumed number of mastery points earned per minute played.
// It is a heuristic, kept at 20 for compatibility with existing results.
const PointsPerMinute = 20

// Playtime is the aggregate estimate derived from a player's mastery records
type Playtime struct {
	Hours       float64
	TotalPoints int64
	Champions   int
}

// NewPlaytime reduces mastery records into an hours-played estimate
func NewPlaytime(records []ChampionMastery) Playtime {
	total := TotalPoints(records)
	return Playtime{
		Hours:       HoursFromPoints(total),
		TotalPoints: total,
		Champions:   len(records),
	}
}

// HoursFromPoints converts mastery points to hours, rounded half-up to two decimals.
// Points are never negative, so math.Round matches half-up here.
func HoursFromPoints(points int64) float64 {
	playedMinutes := float64(points) / PointsPerMinute
	return math.Round(playedMinutes/60*100) / 100
}
