package services

import (
	"fmt"
	"time"

	"folio.dev/internal/models"
)

// ProfileService serves the owner profile used by the Home, About and Contact pages
type ProfileService struct {
	profile *models.Profile
}

// NewProfileService creates a new ProfileService
func NewProfileService(p *models.Profile) *ProfileService {
	return &ProfileService{profile: p}
}

// Get returns the profile
func (s *ProfileService) Get() *models.Profile {
	return s.profile
}

// SkillGroups returns skills grouped by category in category order,
// skipping empty categories
func (s *ProfileService) SkillGroups() []models.SkillGroup {
	byCategory := make(map[models.SkillCategory][]models.Skill)
	for _, skill := range s.profile.Skills {
		byCategory[skill.Category] = append(byCategory[skill.Category], skill)
	}

	var groups []models.SkillGroup
	for _, c := range models.SkillCategories {
		if skills := byCategory[c]; len(skills) > 0 {
			groups = append(groups, models.SkillGroup{Category: c, Skills: skills})
		}
	}
	return groups
}

// FormatDateRange renders an experience period as "Jan 2020 – Present"
func FormatDateRange(start time.Time, end *time.Time, current bool) string {
	const layout = "Jan 2006"
	to := "Present"
	if !current && end != nil {
		to = end.Format(layout)
	}
	return fmt.Sprintf("%s – %s", start.Format(layout), to)
}
