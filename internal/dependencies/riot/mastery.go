package riot

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mcoot/playtime/internal/model"
)

// ChampionMasteryDTO is one entry of the champion-mastery-v4 response
type ChampionMasteryDTO struct {
	ChampionID                   int64  `json:"championId"`
	ChampionLevel                int    `json:"championLevel"`
	ChampionPoints               int64  `json:"championPoints"`
	LastPlayTime                 int64  `json:"lastPlayTime"` // Unix timestamp in ms
	ChampionPointsSinceLastLevel int64  `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int64  `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool   `json:"chestGranted"`
	TokensEarned                 int    `json:"tokensEarned"`
	SummonerID                   string `json:"summonerId"`
}

// ToModel converts the wire shape into a model.ChampionMastery
func (d *ChampionMasteryDTO) ToModel() model.ChampionMastery {
	return model.ChampionMastery{
		ChampionID:           d.ChampionID,
		Level:                d.ChampionLevel,
		Points:               d.ChampionPoints,
		LastPlayTime:         time.UnixMilli(d.LastPlayTime).UTC(),
		PointsSinceLastLevel: d.ChampionPointsSinceLastLevel,
		PointsUntilNextLevel: d.ChampionPointsUntilNextLevel,
		ChestGranted:         d.ChestGranted,
		TokensEarned:         d.TokensEarned,
	}
}

// GetChampionMasteries fetches every champion mastery record for a summoner
func (c *Client) GetChampionMasteries(ctx context.Context, region model.Region, summonerID model.SummonerID) ([]model.ChampionMastery, error) {
	endpoint := fmt.Sprintf("%s/lol/champion-mastery/v4/champion-masteries/by-summoner/%s",
		c.platformURL(region), url.PathEscape(string(summonerID)))

	dtos, err := get[[]ChampionMasteryDTO](ctx, c, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get champion masteries: %w", err)
	}

	records := make([]model.ChampionMastery, 0, len(*dtos))
	for i := range *dtos {
		d := &(*dtos)[i]
		if d.ChampionPoints < 0 {
			return nil, fmt.Errorf("failed to get champion masteries: %w: negative points for champion %d",
				ErrBadResponse, d.ChampionID)
		}
		records = append(records, d.ToModel())
	}

	return records, nil
}
