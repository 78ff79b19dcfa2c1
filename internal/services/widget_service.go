package services

import (
	"context"
	"sync"
	"time"

	"folio.dev/internal/models"
)

// WidgetService feeds the weather and news widgets. With mock fallback on,
// an empty live result is replaced by static data.
type WidgetService struct {
	weather      *WeatherService
	news         *NewsService
	mockFallback bool
	now          func() time.Time
}

// NewWidgetService creates a new WidgetService
func NewWidgetService(weather *WeatherService, news *NewsService, mockFallback bool) *WidgetService {
	return &WidgetService{
		weather:      weather,
		news:         news,
		mockFallback: mockFallback,
		now:          time.Now,
	}
}

// Weather returns current conditions, or nil
func (s *WidgetService) Weather(ctx context.Context) *models.WeatherData {
	return s.weatherOrMock(s.weather.CurrentWeather(ctx))
}

// Forecast returns the five day forecast, or nil
func (s *WidgetService) Forecast(ctx context.Context) *models.WeatherData {
	return s.weatherOrMock(s.weather.Forecast(ctx))
}

// News returns top headlines for category, possibly empty
func (s *WidgetService) News(ctx context.Context, category string) []models.NewsArticle {
	articles := s.news.TopHeadlines(ctx, category)
	if len(articles) == 0 && s.mockFallback {
		return MockNews(s.now())
	}
	return articles
}

// Load fetches current weather and headlines concurrently
func (s *WidgetService) Load(ctx context.Context) (*models.WeatherData, []models.NewsArticle) {
	var (
		wg      sync.WaitGroup
		weather *models.WeatherData
		news    []models.NewsArticle
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		weather = s.Weather(ctx)
	}()
	go func() {
		defer wg.Done()
		news = s.News(ctx, "")
	}()
	wg.Wait()

	return weather, news
}

func (s *WidgetService) weatherOrMock(w *models.WeatherData) *models.WeatherData {
	if w == nil && s.mockFallback {
		return MockWeather(s.now())
	}
	return w
}
