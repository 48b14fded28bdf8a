package openbrewery

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"

	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
	"github.com/adamtorokhu/BriefBeer/internal/domain"
)

// ListPage fetches one page of the catalog. Pages are 1-based. A page
// shorter than PageSize (or empty) is the last one.
func (c *Client) ListPage(ctx context.Context, page int) ([]domain.Brewery, error) {
	params := url.Values{}
	params.Set("per_page", fmt.Sprintf("%d", c.pageSize))
	params.Set("page", fmt.Sprintf("%d", page))

	listURL := c.baseURL + "/breweries?" + params.Encode()

	c.logger.Debug("fetching catalog page",
		"page", page,
		"per_page", c.pageSize,
	)

	body, err := c.get(ctx, listURL)
	if err != nil {
		return nil, err
	}

	var dtos []breweryDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.CodeDecode, "parse page %d", page)
	}

	records := make([]domain.Brewery, 0, len(dtos))
	for i := range dtos {
		records = append(records, dtos[i].toDomain())
	}

	return records, nil
}

// GetByID fetches a single record's full detail.
func (c *Client) GetByID(ctx context.Context, id string) (*domain.Brewery, error) {
	detailURL := c.baseURL + "/breweries/" + url.PathEscape(id)

	c.logger.Debug("fetching catalog detail", "id", id)

	body, err := c.get(ctx, detailURL)
	if err != nil {
		return nil, err
	}

	var dto breweryDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.CodeDecode, "parse detail %s", id)
	}

	record := dto.toDomain()
	return &record, nil
}
