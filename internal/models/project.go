package models

import (
	"fmt"
	"strings"
	"time"
)

// Project represents a portfolio project
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	TechStack       []string  `json:"tech_stack"`
	Category        Category  `json:"category"`
	Image           string    `json:"image"`
	DemoURL         string    `json:"demo_url,omitempty"`
	GitHubURL       string    `json:"github_url,omitempty"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"created_at"`
}

// HasTag reports whether the tech stack contains tag, ignoring case
func (p Project) HasTag(tag string) bool {
	for _, t := range p.TechStack {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// Category groups projects by the kind of product shipped
type Category string

const (
	CategoryWeb     Category = "Web"
	CategoryMobile  Category = "Mobile"
	CategoryAPI     Category = "API"
	CategoryDesktop Category = "Desktop"
	CategoryAIML    Category = "AI/ML"
	CategoryGame    Category = "Game"
	CategoryOther   Category = "Other"

	// CategoryAll is a selector only; no project carries it.
	CategoryAll Category = "ALL"
)

// Categories lists every project category in display order.
var Categories = []Category{
	CategoryWeb,
	CategoryMobile,
	CategoryAPI,
	CategoryDesktop,
	CategoryAIML,
	CategoryGame,
	CategoryOther,
}

// IsValid checks if the category is a member of the enumeration
func (c Category) IsValid() bool {
	switch c {
	case CategoryWeb, CategoryMobile, CategoryAPI, CategoryDesktop, CategoryAIML, CategoryGame, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Label returns the human readable name shown on category buttons
func (c Category) Label() string {
	switch c {
	case CategoryWeb:
		return "Web Development"
	case CategoryMobile:
		return "Mobile Development"
	case CategoryAPI:
		return "API Development"
	case CategoryDesktop:
		return "Desktop Application"
	case CategoryAIML:
		return "AI/ML"
	case CategoryGame:
		return "Game Development"
	case CategoryOther:
		return "Other"
	case CategoryAll:
		return "All Projects"
	default:
		return string(c)
	}
}

// ParseCategory parses a category code or label, ignoring case
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q (must be one of Web, Mobile, API, Desktop, AI/ML, Game, Other)", s)
}

// ParseCategoryFilter parses a category selector. Empty and "all" select every category.
func ParseCategoryFilter(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	return ParseCategory(s)
}
