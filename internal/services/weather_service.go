package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"folio.dev/internal/models"
)

// weatherCodes maps WMO weather interpretation codes to descriptions
var weatherCodes = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// WeatherDescription returns the description for a weather code
func WeatherDescription(code int) string {
	if d, ok := weatherCodes[code]; ok {
		return d
	}
	return "Unknown"
}

const (
	defaultHumidity  = 65
	defaultWindSpeed = 8
	forecastDays     = 5
)

// WeatherOptions configures a WeatherService
type WeatherOptions struct {
	BaseURL   string
	APIKey    string
	Latitude  float64
	Longitude float64
	Location  string
	Country   string
	Timezone  string
	Timeout   time.Duration
}

// WeatherService fetches conditions for one fixed location.
// Failures are logged and reported as a nil result.
type WeatherService struct {
	opts       WeatherOptions
	httpClient *http.Client
}

// NewWeatherService creates a new WeatherService
func NewWeatherService(opts WeatherOptions) *WeatherService {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &WeatherService{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

type currentResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Hourly struct {
		RelativeHumidity []float64 `json:"relative_humidity_2m"`
	} `json:"hourly"`
}

type forecastResponse struct {
	Daily struct {
		Time           []string  `json:"time"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		WeatherCode    []int     `json:"weathercode"`
	} `json:"daily"`
}

// CurrentWeather returns current conditions, or nil if they could not be fetched
func (s *WeatherService) CurrentWeather(ctx context.Context) *models.WeatherData {
	params := s.baseParams()
	params.Set("current_weather", "true")
	params.Set("hourly", "temperature_2m,precipitation,relative_humidity_2m")

	var resp currentResponse
	if err := s.get(ctx, params, &resp); err != nil {
		log.Printf("Error fetching weather data: %v", err)
		return nil
	}

	cw := resp.CurrentWeather
	humidity := defaultHumidity
	if len(resp.Hourly.RelativeHumidity) > 0 {
		humidity = round(resp.Hourly.RelativeHumidity[0])
	}

	return &models.WeatherData{
		Location: s.location(),
		Current: models.CurrentConditions{
			Temperature: round(cw.Temperature),
			Description: WeatherDescription(cw.WeatherCode),
			Icon:        strconv.Itoa(cw.WeatherCode),
			Humidity:    humidity,
			WindSpeed:   round(cw.WindSpeed),
			// approximation; the endpoint has no apparent temperature here
			FeelsLike: round(cw.Temperature + 2),
		},
		Forecast: []models.ForecastDay{},
	}
}

// Forecast returns a five day forecast, or nil if it could not be fetched
func (s *WeatherService) Forecast(ctx context.Context) *models.WeatherData {
	params := s.baseParams()
	params.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode,precipitation_sum")
	params.Set("forecast_days", "7")

	var resp forecastResponse
	if err := s.get(ctx, params, &resp); err != nil {
		log.Printf("Error fetching weather forecast: %v", err)
		return nil
	}

	d := resp.Daily
	n := min(len(d.Time), len(d.TemperatureMax), len(d.TemperatureMin), len(d.WeatherCode))
	if n == 0 {
		log.Printf("Error fetching weather forecast: response has no daily data")
		return nil
	}

	days := make([]models.ForecastDay, 0, forecastDays)
	for i := 0; i < n && i < forecastDays; i++ {
		date, err := time.Parse(time.DateOnly, d.Time[i])
		if err != nil {
			log.Printf("Error fetching weather forecast: invalid date %q", d.Time[i])
			return nil
		}
		days = append(days, models.ForecastDay{
			Date:        date,
			High:        round(d.TemperatureMax[i]),
			Low:         round(d.TemperatureMin[i]),
			Description: WeatherDescription(d.WeatherCode[i]),
			Icon:        strconv.Itoa(d.WeatherCode[i]),
		})
	}

	avg := (d.TemperatureMax[0] + d.TemperatureMin[0]) / 2
	return &models.WeatherData{
		Location: s.location(),
		Current: models.CurrentConditions{
			Temperature: round(avg),
			Description: WeatherDescription(d.WeatherCode[0]),
			Icon:        strconv.Itoa(d.WeatherCode[0]),
			Humidity:    defaultHumidity,
			WindSpeed:   defaultWindSpeed,
			FeelsLike:   round(avg + 2),
		},
		Forecast: days,
	}
}

func (s *WeatherService) location() models.Location {
	return models.Location{Name: s.opts.Location, Country: s.opts.Country}
}

func (s *WeatherService) baseParams() url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(s.opts.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(s.opts.Longitude, 'f', -1, 64))
	if s.opts.Timezone != "" {
		params.Set("timezone", s.opts.Timezone)
	}
	if s.opts.APIKey != "" {
		params.Set("apikey", s.opts.APIKey)
	}
	return params
}

// get performs a single GET of the forecast endpoint and decodes the JSON body
func (s *WeatherService) get(ctx context.Context, params url.Values, result interface{}) error {
	return getJSON(ctx, s.httpClient, s.opts.BaseURL+"/forecast?"+params.Encode(), result)
}

// getJSON performs one GET request and unmarshals a 2xx JSON response
func getJSON(ctx context.Context, client *http.Client, rawURL string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func round(f float64) int {
	return int(math.Round(f))
}

// MockWeather returns static weather used when the live widget has nothing to show
func MockWeather(now time.Time) *models.WeatherData {
	day := 24 * time.Hour
	return &models.WeatherData{
		Location: models.Location{Name: "Ahmedabad", Country: "IN"},
		Current: models.CurrentConditions{
			Temperature: 32,
			Description: "partly cloudy",
			Icon:        "2",
			Humidity:    68,
			WindSpeed:   8,
			FeelsLike:   35,
		},
		Forecast: []models.ForecastDay{
			{Date: now, High: 35, Low: 28, Description: "sunny", Icon: "0"},
			{Date: now.Add(day), High: 33, Low: 26, Description: "partly cloudy", Icon: "2"},
			{Date: now.Add(2 * day), High: 30, Low: 24, Description: "rainy", Icon: "61"},
		},
	}
}
