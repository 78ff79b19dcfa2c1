package models

import "time"

// Location names the place a weather report is for
type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// CurrentConditions is the "now" part of a weather report
type CurrentConditions struct {
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
	FeelsLike   int    `json:"feels_like"`
}

// ForecastDay is one day of a multi-day forecast
type ForecastDay struct {
	Date        time.Time `json:"date"`
	High        int       `json:"high"`
	Low         int       `json:"low"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// WeatherData is what the weather widget renders
type WeatherData struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
}

// NewsSource names the outlet an article came from
type NewsSource struct {
	Name string `json:"name"`
}

// NewsArticle is a single headline in the news widget
type NewsArticle struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	URLToImage  string     `json:"url_to_image,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	Source      NewsSource `json:"source"`
	Author      string     `json:"author,omitempty"`
}
