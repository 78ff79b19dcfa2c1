package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"folio.dev/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: "storefront", Title: "Storefront", Description: "Headless commerce frontend", TechStack: []string{"React", "TypeScript"}, Category: models.CategoryWeb, Featured: true},
		{ID: "dispatch", Title: "Realtime Dispatch Service", Description: "Routes drivers to jobs", TechStack: []string{"Node.js", "Kafka"}, Category: models.CategoryAPI, Featured: true},
		{ID: "crew-portal", Title: "Crew Portal", Description: "Rostering for airline crews", TechStack: []string{"React", "AppSync"}, Category: models.CategoryWeb},
		{ID: "payments", Title: "Payments Gateway", Description: "Card and wallet payments", TechStack: []string{"Fastify", "PostgreSQL"}, Category: models.CategoryAPI, Featured: true},
		{ID: "landing", Title: "Landing Pages", Description: "Marketing site builder", TechStack: []string{"Next.js"}, Category: models.CategoryWeb, Featured: true},
	}
}

func TestNew_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []models.Project
		wantErr string
	}{
		{
			name: "duplicate id",
			records: []models.Project{
				{ID: "a", Title: "A", Category: models.CategoryWeb},
				{ID: "a", Title: "B", Category: models.CategoryAPI},
			},
			wantErr: "duplicate project id: a",
		},
		{
			name:    "empty id",
			records: []models.Project{{Title: "Nameless", Category: models.CategoryWeb}},
			wantErr: "has no id",
		},
		{
			name:    "unknown category",
			records: []models.Project{{ID: "a", Title: "A", Category: "Blockchain"}},
			wantErr: "invalid category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalog_IsImmutable(t *testing.T) {
	records := sampleProjects()
	c, err := New(records)
	require.NoError(t, err)

	records[0].Title = "changed by caller"
	records[0].TechStack[0] = "changed by caller"

	all := c.All()
	require.Equal(t, "Storefront", all[0].Title)
	require.Equal(t, "React", all[0].TechStack[0])

	all[1].TechStack[0] = "changed by reader"
	got, ok := c.Get("dispatch")
	require.True(t, ok)
	require.Equal(t, "Node.js", got.TechStack[0])
}

func TestCatalog_Get(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	p, ok := c.Get("payments")
	require.True(t, ok)
	require.Equal(t, "Payments Gateway", p.Title)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestCatalog_Featured(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	featured := c.Featured(3)
	require.Len(t, featured, 3)
	require.Equal(t, "storefront", featured[0].ID)
	require.Equal(t, "dispatch", featured[1].ID)
	require.Equal(t, "payments", featured[2].ID)

	require.Len(t, c.Featured(0), 4)
}

func TestCatalog_Search(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	got := c.Search(SearchQuery{Text: "react", Category: models.CategoryAll})
	require.Equal(t, []string{"storefront", "crew-portal"}, ids(got))
	require.Equal(t, 5, c.Len())
}

func ids(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}
