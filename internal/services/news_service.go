package services

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"folio.dev/internal/models"
)

// MaxHeadlines is the number of articles shown in the news widget
const MaxHeadlines = 6

// NewsOptions configures a NewsService
type NewsOptions struct {
	BaseURL  string
	APIKey   string
	Country  string
	Category string
	Timeout  time.Duration
}

// NewsService fetches top headlines. Failures are logged and reported as an
// empty list.
type NewsService struct {
	opts       NewsOptions
	httpClient *http.Client
}

// NewNewsService creates a new NewsService
func NewNewsService(opts NewsOptions) *NewsService {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Country == "" {
		opts.Country = "us"
	}
	if opts.Category == "" {
		opts.Category = "technology"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &NewsService{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// Configured reports whether an API key is available
func (s *NewsService) Configured() bool {
	return s.opts.APIKey != ""
}

type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// TopHeadlines returns up to MaxHeadlines articles for category. An empty
// category uses the configured default.
func (s *NewsService) TopHeadlines(ctx context.Context, category string) []models.NewsArticle {
	if !s.Configured() {
		log.Printf("News API key not configured, skipping headlines")
		return []models.NewsArticle{}
	}
	if category == "" {
		category = s.opts.Category
	}

	params := url.Values{}
	params.Set("category", category)
	params.Set("country", s.opts.Country)
	params.Set("apiKey", s.opts.APIKey)

	var resp headlinesResponse
	if err := getJSON(ctx, s.httpClient, s.opts.BaseURL+"/top-headlines?"+params.Encode(), &resp); err != nil {
		log.Printf("Error fetching news: %v", err)
		return []models.NewsArticle{}
	}

	articles := make([]models.NewsArticle, 0, MaxHeadlines)
	for _, a := range resp.Articles {
		if len(articles) == MaxHeadlines {
			break
		}
		published, _ := time.Parse(time.RFC3339, a.PublishedAt)
		articles = append(articles, models.NewsArticle{
			ID:          a.URL,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			PublishedAt: published,
			Source:      models.NewsSource{Name: a.Source.Name},
			Author:      a.Author,
		})
	}

	return articles
}

// MockNews returns static headlines used when the live widget has nothing to show
func MockNews(now time.Time) []models.NewsArticle {
	type mock struct {
		title, description, image, source, author string
	}
	items := []mock{
		{"Revolutionary AI Technology Transforms Software Development", "New artificial intelligence tools are making coding more efficient and accessible to developers worldwide.", "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=400", "Tech News", "Jane Developer"},
		{"The Future of Web Development: Trends to Watch", "Exploring emerging technologies and frameworks that will shape the future of web development.", "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400", "Web Weekly", "John Coder"},
		{"TypeScript Adoption Reaches All-Time High", "More companies are adopting TypeScript for better code quality and developer experience.", "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400", "Developer Daily", "Sarah Type"},
		{"React Beta Released: What's New and Exciting", "The latest React beta introduces powerful new features for modern web applications.", "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400", "React Weekly", "Mike Component"},
		{"Cloud Computing Trends That Will Define the Year", "From serverless architecture to edge computing, discover the cloud trends shaping our future.", "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400", "Cloud Today", "Alex Server"},
		{"Cybersecurity Best Practices for Modern Applications", "Essential security measures every developer should implement in their applications.", "https://images.unsplash.com/photo-1563206767-5b18f218e8de?w=400", "Security First", "Emma Shield"},
	}

	articles := make([]models.NewsArticle, 0, len(items))
	for i, m := range items {
		articles = append(articles, models.NewsArticle{
			ID:          strconv.Itoa(i + 1),
			Title:       m.title,
			Description: m.description,
			URL:         "#",
			URLToImage:  m.image,
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
			Source:      models.NewsSource{Name: m.source},
			Author:      m.author,
		})
	}
	return articles
}
