package models

import "time"

// SkillCategory groups skills on the About page
type SkillCategory string

const (
	SkillFrontend SkillCategory = "Frontend"
	SkillBackend  SkillCategory = "Backend"
	SkillDatabase SkillCategory = "Database"
	SkillMobile   SkillCategory = "Mobile"
	SkillDevOps   SkillCategory = "DevOps"
	SkillDesign   SkillCategory = "Design"
	SkillOther    SkillCategory = "Other"
)

// SkillCategories lists skill categories in display order
var SkillCategories = []SkillCategory{
	SkillFrontend,
	SkillBackend,
	SkillDatabase,
	SkillMobile,
	SkillDevOps,
	SkillDesign,
	SkillOther,
}

// IsValid checks if the skill category is known
func (c SkillCategory) IsValid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Skill is a single entry in the skills grid
type Skill struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Category    SkillCategory `json:"category" yaml:"category"`
	Proficiency int           `json:"proficiency" yaml:"proficiency"` // 1-10
	Icon        string        `json:"icon,omitempty" yaml:"icon"`
}

// SkillGroup is the set of skills sharing a category
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []Skill       `json:"skills"`
}

// Experience is one position held
type Experience struct {
	ID          string     `json:"id" yaml:"id"`
	Company     string     `json:"company" yaml:"company"`
	Position    string     `json:"position" yaml:"position"`
	Description string     `json:"description" yaml:"description"`
	StartDate   time.Time  `json:"start_date" yaml:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" yaml:"end_date"`
	Current     bool       `json:"is_current_position" yaml:"current"`
	Skills      []string   `json:"skills" yaml:"skills"`
	Location    string     `json:"location,omitempty" yaml:"location"`
	Highlights  []string   `json:"highlights,omitempty" yaml:"highlights"`
}

// Education is a degree or certification
type Education struct {
	Degree string `json:"degree" yaml:"degree"`
	School string `json:"school" yaml:"school"`
	Period string `json:"period" yaml:"period"`
	Detail string `json:"detail,omitempty" yaml:"detail"`
}

// Metric is a headline number on the About page
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ContactChannel is a way to reach the site owner
type ContactChannel struct {
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
	Href     string `json:"href,omitempty" yaml:"href"`
	External bool   `json:"external" yaml:"external"`
}

// Profile holds everything about the site owner that is not a project
type Profile struct {
	Name        string           `json:"name" yaml:"name"`
	Headline    string           `json:"headline" yaml:"headline"`
	Summary     string           `json:"summary" yaml:"summary"`
	Location    string           `json:"location" yaml:"location"`
	Image       string           `json:"image" yaml:"image"`
	Metrics     []Metric         `json:"metrics" yaml:"metrics"`
	Skills      []Skill          `json:"skills" yaml:"skills"`
	Experiences []Experience     `json:"experiences" yaml:"experiences"`
	Education   []Education      `json:"education" yaml:"education"`
	Contact     []ContactChannel `json:"contact" yaml:"contact"`
	Social      []ContactChannel `json:"social" yaml:"social"`
}
