package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sandevgo/majordomo/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{"current_condition":[{"temp_C":"30","FeelsLikeC":"33","weatherDesc":[{"value":"Sunny"}]}]}`

func newClient(baseURL string, timeout time.Duration) *Client {
	return New(&config.WeatherConfig{BaseURL: baseURL, Timeout: timeout})
}

func TestEnrich_NoKeywordMakesNoRequest(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, sampleBody)
	}))
	defer server.Close()

	c := newClient(server.URL, time.Second)
	got := c.Enrich(context.Background(), "你好，今天過得如何")

	assert.Empty(t, got)
	assert.Zero(t, requests.Load())
}

func TestEnrich_CityResolution(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantPath string
	}{
		{"taipei", "台北天氣如何", "/Taipei"},
		{"taipei traditional", "臺北天氣如何", "/Taipei"},
		{"kaohsiung", "高雄天氣好嗎", "/Kaohsiung"},
		{"tokyo", "東京的天氣呢", "/Tokyo"},
		{"new taipei escaped", "新北天氣", "/New%20Taipei"},
		{"unknown city defaults", "天氣如何", "/Taipei"},
		{"latin keyword case-insensitive", "WEATHER please", "/Taipei"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				assert.Equal(t, "j1", r.URL.Query().Get("format"))
				fmt.Fprint(w, sampleBody)
			}))
			defer server.Close()

			c := newClient(server.URL, time.Second)
			got := c.Enrich(context.Background(), tt.text)

			require.NotEmpty(t, got)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestEnrich_SuccessFormatsAuthoritativeBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleBody)
	}))
	defer server.Close()

	c := newClient(server.URL, time.Second)
	got := c.Enrich(context.Background(), "台北天氣如何")

	assert.Equal(t, "【即時天氣資料（真實數據，禁止捏造）】Taipei：Sunny，氣溫 30°C，體感 33°C", got)
}

func TestEnrich_FailuresAreSilent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"current_condition": "not a list"}`)
			},
		},
		{
			name: "empty payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"current_condition":[]}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := newClient(server.URL, time.Second)
			assert.Empty(t, c.Enrich(context.Background(), "台北天氣如何"))
		})
	}
}

func TestEnrich_TimeoutIsSilent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		fmt.Fprint(w, sampleBody)
	}))
	defer server.Close()

	c := newClient(server.URL, 50*time.Millisecond)
	assert.Empty(t, c.Enrich(context.Background(), "台北天氣如何"))
}

func TestResolveCity_FirstMatchWins(t *testing.T) {
	assert.Equal(t, "Taipei", resolveCity("先說台北再說高雄"))
}
