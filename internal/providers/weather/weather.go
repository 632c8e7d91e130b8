package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sandevgo/majordomo/internal/config"
	"github.com/sandevgo/majordomo/internal/core"
	"github.com/sandevgo/majordomo/pkg/log"
)

const defaultCity = "Taipei"

// Keyword scan is deliberately dumb: the butler only fetches weather when
// the user plainly asks for it.
var keywords = []string{"天氣", "weather"}

// Known location names mapped to the canonical name the lookup endpoint
// understands. The first table entry found in the message wins.
var cities = []struct {
	name      string
	canonical string
}{
	{"台北", "Taipei"},
	{"臺北", "Taipei"},
	{"新北", "New Taipei"},
	{"台中", "Taichung"},
	{"臺中", "Taichung"},
	{"台南", "Tainan"},
	{"臺南", "Tainan"},
	{"高雄", "Kaohsiung"},
	{"東京", "Tokyo"},
	{"京都", "Kyoto"},
	{"大阪", "Osaka"},
}

// Client fetches current conditions from a wttr.in style endpoint.
type Client struct {
	client  *http.Client
	baseURL string
}

func New(cfg *config.WeatherConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Enrich returns a weather context block when the message asks about the
// weather and the lookup succeeds, otherwise "". It never fails the
// caller.
func (c *Client) Enrich(ctx context.Context, text string) string {
	if !wantsWeather(text) {
		return ""
	}

	city := resolveCity(text)
	report, err := c.lookup(ctx, city)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("city", city).Msg("weather lookup failed")
		return ""
	}

	// Tagged as real data so the generation step does not fabricate
	// numbers of its own.
	return fmt.Sprintf("【即時天氣資料（真實數據，禁止捏造）】%s：%s，氣溫 %s°C，體感 %s°C",
		city, report.description, report.tempC, report.feelsLikeC)
}

func wantsWeather(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func resolveCity(text string) string {
	for _, c := range cities {
		if strings.Contains(text, c.name) {
			return c.canonical
		}
	}
	return defaultCity
}

type report struct {
	description string
	tempC       string
	feelsLikeC  string
}

func (c *Client) lookup(ctx context.Context, city string) (*report, error) {
	reqURL := fmt.Sprintf("%s/%s?format=j1", c.baseURL, url.PathEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", core.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		CurrentCondition []struct {
			TempC       string `json:"temp_C"`
			FeelsLikeC  string `json:"FeelsLikeC"`
			WeatherDesc []struct {
				Value string `json:"value"`
			} `json:"weatherDesc"`
		} `json:"current_condition"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(payload.CurrentCondition) == 0 || len(payload.CurrentCondition[0].WeatherDesc) == 0 {
		return nil, fmt.Errorf("malformed payload: %s", string(body))
	}

	cond := payload.CurrentCondition[0]
	return &report{
		description: cond.WeatherDesc[0].Value,
		tempC:       cond.TempC,
		feelsLikeC:  cond.FeelsLikeC,
	}, nil
}
