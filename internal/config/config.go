package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"folio.dev/internal/catalog"
	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr       string
	DescriptionLimit int
	MockFallback     bool
	Catalog          *catalog.Catalog
	Profile          *models.Profile
	Weather          WeatherConfig
	News             NewsConfig
	Contact          ContactConfig
}

// WeatherConfig holds settings for the open-meteo forecast client
type WeatherConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Latitude  float64       `mapstructure:"latitude"`
	Longitude float64       `mapstructure:"longitude"`
	Location  string        `mapstructure:"location"`
	Country   string        `mapstructure:"country"`
	Timezone  string        `mapstructure:"timezone"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// NewsConfig holds settings for the headlines client
type NewsConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Country  string        `mapstructure:"country"`
	Category string        `mapstructure:"category"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ContactConfig holds settings for the simulated contact form
type ContactConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// settings mirrors the keys viper knows about
type settings struct {
	ServerAddr       string        `mapstructure:"server_addr"`
	DescriptionLimit int           `mapstructure:"description_limit"`
	MockFallback     bool          `mapstructure:"mock_fallback"`
	Weather          WeatherConfig `mapstructure:"weather"`
	News             NewsConfig    `mapstructure:"news"`
	Contact          ContactConfig `mapstructure:"contact"`
}

// Load reads configuration from the environment and an optional config file,
// then loads the embedded site content
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("PORTFOLIO_CONFIG"), content.FS())
}

// LoadFrom reads configuration from path (optional) and content from contentFS
func LoadFrom(path string, contentFS fs.FS) (*Config, error) {
	s, err := loadSettings(path)
	if err != nil {
		return nil, err
	}

	projects, err := content.LoadProjects(contentFS)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(projects.Projects)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	profile, err := content.LoadProfile(contentFS)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr:       s.ServerAddr,
		DescriptionLimit: s.DescriptionLimit,
		MockFallback:     s.MockFallback,
		Catalog:          cat,
		Profile:          profile,
		Weather:          s.Weather,
		News:             s.News,
		Contact:          s.Contact,
	}, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server_addr", ":8080")
	v.SetDefault("description_limit", catalog.DefaultDescriptionLimit)
	v.SetDefault("mock_fallback", true)

	// Ahmedabad
	v.SetDefault("weather.base_url", "https://api.open-meteo.com/v1")
	v.SetDefault("weather.latitude", 23.0225)
	v.SetDefault("weather.longitude", 72.5714)
	v.SetDefault("weather.location", "Ahmedabad")
	v.SetDefault("weather.country", "IN")
	v.SetDefault("weather.timezone", "Asia/Kolkata")
	v.SetDefault("weather.timeout", 10*time.Second)
	v.SetDefault("weather.api_key", "")

	v.SetDefault("news.base_url", "https://newsapi.org/v2")
	v.SetDefault("news.country", "us")
	v.SetDefault("news.category", "technology")
	v.SetDefault("news.timeout", 10*time.Second)
	v.SetDefault("news.api_key", "")

	v.SetDefault("contact.delay", 2*time.Second)

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for existing deployments.
	_ = v.BindEnv("server_addr", "PORTFOLIO_SERVER_ADDR", "SERVER_ADDR")
	_ = v.BindEnv("news.api_key", "PORTFOLIO_NEWS_API_KEY", "NEWS_API_KEY")
	_ = v.BindEnv("weather.api_key", "PORTFOLIO_WEATHER_API_KEY", "WEATHER_API_KEY")

	return v
}

func loadSettings(path string) (*settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			var pathErr *fs.PathError
			if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	s := &settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if s.DescriptionLimit <= 0 {
		s.DescriptionLimit = catalog.DefaultDescriptionLimit
	}
	if s.Contact.Delay < 0 {
		s.Contact.Delay = 0
	}

	return s, nil
}
