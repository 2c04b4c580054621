package riot

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mcoot/playtime/internal/model"
)

// SummonerDTO is the summoner-v4 response body
type SummonerDTO struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"` // Unix timestamp in ms
	SummonerLevel int64  `json:"summonerLevel"`
}

// ToModel converts the wire shape into a model.Summoner
func (d *SummonerDTO) ToModel() *model.Summoner {
	return &model.Summoner{
		ID:            model.SummonerID(d.ID),
		AccountID:     d.AccountID,
		PUUID:         d.PUUID,
		Name:          d.Name,
		ProfileIconID: d.ProfileIconID,
		RevisionDate:  time.UnixMilli(d.RevisionDate).UTC(),
		Level:         d.SummonerLevel,
	}
}

// GetSummonerByName resolves a display name on one platform
func (c *Client) GetSummonerByName(ctx context.Context, region model.Region, name string) (*model.Summoner, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-name/%s",
		c.platformURL(region), url.PathEscape(name))

	dto, err := get[SummonerDTO](ctx, c, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get summoner by name: %w", err)
	}
	if dto.ID == "" {
		return nil, fmt.Errorf("failed to get summoner by name: %w: missing id", ErrBadResponse)
	}

	return dto.ToModel(), nil
}
