package telemetry

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"go.uber.org/zap"
)

const defaultBaseURL = "http://cdec.water.ca.gov/dynamicapp/req/JSONDataServlet"

// CDEC publishes -9999 for missing daily readings.
const noDataSentinel = -9999

// Reading is one daily reservoir-storage observation.
type Reading struct {
	Date    string `json:"date"`
	ValueAF int64  `json:"value_af"`
}

// Client fetches daily reservoir-storage readings from the CDEC data
// service. Every failure degrades to "no data"; the dashboard renders
// without the panel rather than erroring.
type Client struct {
	station string
	baseURL string
	client  *http.Client
}

func NewClient(station string) *Client {
	return &Client{
		station: station,
		baseURL: defaultBaseURL,
		client:  utils.NewHTTPClient(15 * time.Second),
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(station, baseURL string) *Client {
	c := NewClient(station)
	c.baseURL = baseURL
	return c
}

// LatestStorage returns the most recent valid daily reading within the last
// seven days, or nil when the service is unreachable, times out, or has no
// usable data in the window.
func (c *Client) LatestStorage() *Reading {
	now := time.Now()
	start := now.AddDate(0, 0, -7)

	url := fmt.Sprintf("%s?Stations=%s&SensorNums=15&dur_code=D&Start=%s&End=%s",
		c.baseURL, c.station, start.Format("2006-01-02"), now.Format("2006-01-02"))

	resp, err := c.client.Get(url)
	if err != nil {
		zap.L().Warn("reservoir telemetry fetch failed", zap.String("station", c.station), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("reservoir telemetry fetch failed",
			zap.String("station", c.station), zap.Int("status", resp.StatusCode))
		return nil
	}

	var series []struct {
		Date  string   `json:"date"`
		Value *float64 `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		zap.L().Warn("reservoir telemetry decode failed", zap.String("station", c.station), zap.Error(err))
		return nil
	}

	// Walk back from the newest entry past nulls and sentinel values.
	for i := len(series) - 1; i >= 0; i-- {
		point := series[i]
		if point.Value == nil || *point.Value <= noDataSentinel {
			continue
		}
		return &Reading{Date: point.Date, ValueAF: int64(*point.Value)}
	}
	return nil
}
