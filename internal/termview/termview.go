// Package termview renders project cards for the terminal.
package termview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio.dev/internal/catalog"
	"folio.dev/internal/services"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorPrimary = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorAccent  = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
)

// Styles holds the styles used for one rendering
type Styles struct {
	Title   lipgloss.Style
	Meta    lipgloss.Style
	Badge   lipgloss.Style
	Keyword lipgloss.Style
	Hint    lipgloss.Style
}

// DefaultStyles returns the colored styles
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Meta:    lipgloss.NewStyle().Foreground(ColorGray),
		Badge:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Keyword: lipgloss.NewStyle().Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(ColorGray).Italic(true),
	}
}

// PlainStyles returns styles that add no escape sequences
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Meta: s, Badge: s, Keyword: s, Hint: s}
}

// Printer writes project cards to a terminal
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a new Printer
func NewPrinter(w io.Writer, styles Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// Segments renders highlighted text, emphasising keyword segments
func (p *Printer) Segments(segments []catalog.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Keyword {
			b.WriteString(p.styles.Keyword.Render(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Card renders one project card
func (p *Printer) Card(card services.ProjectCard) string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(card.Title))
	if card.GenAI {
		b.WriteString(" " + p.styles.Badge.Render("[GenAI]"))
	}
	if card.Featured {
		b.WriteString(" " + p.styles.Badge.Render("[Featured]"))
	}
	b.WriteString("\n")

	b.WriteString(p.styles.Meta.Render(fmt.Sprintf("%s · %s · %s",
		card.ID, card.Category.Label(), strings.Join(card.TechStack, ", "))))
	b.WriteString("\n")
	b.WriteString(card.Description)
	b.WriteString("\n")

	if desc := card.LongDescription; desc.Text != "" {
		b.WriteString(p.Segments(desc.Segments))
		b.WriteString("\n")
		if desc.Truncated && !desc.Expanded {
			b.WriteString(p.styles.Hint.Render(fmt.Sprintf("(use --expand %s to read more)", card.ID)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Print writes every card separated by blank lines
func (p *Printer) Print(cards []services.ProjectCard) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(p.w, "No projects found")
		return err
	}

	for i, card := range cards {
		if i > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(p.w, p.Card(card)); err != nil {
			return err
		}
	}
	return nil
}
