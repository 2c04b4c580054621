package model

import "time"

// ChampionMastery is a player's accumulated progress on a single champion
type ChampionMastery struct {
	ChampionID           int64
	Level                int
	Points               int64
	LastPlayTime         time.Time
	PointsSinceLastLevel int64
	PointsUntilNextLevel int64
	ChestGranted         bool
	TokensEarned         int
}

// TotalPoints sums the mastery points across all records
func TotalPoints(records []ChampionMastery) int64 {
	var total int64
	for _, r := range records {
		total += r.Points
	}
	return total
}
