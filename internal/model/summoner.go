package model

import "time"

// SummonerID is the encrypted summoner identifier issued by the platform
type SummonerID string

// Summoner identifies a player on one regional platform
type Summoner struct {
	ID            SummonerID
	AccountID     string
	PUUID         string
	Name          string
	ProfileIconID int
	RevisionDate  time.Time
	Level         int64
}
