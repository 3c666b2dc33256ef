package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/voyzlab/voyz-marketing/models"
)

// Feed endpoints of the public special-day service, keyed by the day type
// label they produce.
var specialDayEndpoints = map[string]string{
	"공휴일": "getRestDeInfo",
	"국경일": "getHoliDeInfo",
	"절기":  "get24DivisionsInfo",
	"기념일": "getAnniversaryInfo",
	"잡절":  "getSundryDayInfo",
}

// SpecialDayClient fetches special-day records from the public calendar feed
type SpecialDayClient interface {
	FetchMonth(ctx context.Context, year int, month time.Month) ([]*models.SpecialDay, error)
}

// SpecialDayClientImpl implements SpecialDayClient
type SpecialDayClientImpl struct {
	BaseURL    string
	ServiceKey string
	HTTPClient *http.Client
}

// NewSpecialDayClient creates a new special-day feed client
func NewSpecialDayClient(baseURL, serviceKey string, timeout time.Duration) SpecialDayClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SpecialDayClientImpl{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// feedItem is one record in the feed response. locdate arrives as a yyyyMMdd
// number, isHoliday as "Y"/"N".
type feedItem struct {
	DateName  string          `json:"dateName"`
	Locdate   json.RawMessage `json:"locdate"`
	IsHoliday string          `json:"isHoliday"`
}

type feedEnvelope struct {
	Response struct {
		Body struct {
			Items struct {
				Item json.RawMessage `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

// FetchMonth pulls every endpoint for the given month and returns the merged
// record list. Day ranges are single-day: the feed reports one date per record.
func (c *SpecialDayClientImpl) FetchMonth(ctx context.Context, year int, month time.Month) ([]*models.SpecialDay, error) {
	var result []*models.SpecialDay

	for dayType, endpoint := range specialDayEndpoints {
		items, err := c.fetchEndpoint(ctx, endpoint, year, month)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
		}

		for _, item := range items {
			date, err := parseLocdate(item.Locdate)
			if err != nil {
				continue
			}
			result = append(result, &models.SpecialDay{
				Name:      item.DateName,
				Type:      dayType,
				StartDate: date,
				EndDate:   date,
				IsHoliday: item.IsHoliday == "Y",
			})
		}
	}

	return result, nil
}

func (c *SpecialDayClientImpl) fetchEndpoint(ctx context.Context, endpoint string, year int, month time.Month) ([]feedItem, error) {
	params := url.Values{}
	params.Set("ServiceKey", c.ServiceKey)
	params.Set("numOfRows", "100")
	params.Set("solYear", fmt.Sprintf("%04d", year))
	params.Set("solMonth", fmt.Sprintf("%02d", int(month)))
	params.Set("_type", "json")

	reqURL := fmt.Sprintf("%s/%s?%s", c.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var envelope feedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return decodeItems(envelope.Response.Body.Items.Item)
}

// decodeItems handles the feed's shape quirk: "item" is an array for multiple
// records but a bare object for exactly one.
func decodeItems(raw json.RawMessage) ([]feedItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == `""` {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []feedItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var single feedItem
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []feedItem{single}, nil
}

// parseLocdate accepts the date both as a JSON number and a quoted string
func parseLocdate(raw json.RawMessage) (time.Time, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return time.Parse("20060102", s)
}
