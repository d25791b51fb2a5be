package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/safing/taxglobe/service/attributes"
	"github.com/safing/taxglobe/service/countries"
	"github.com/safing/taxglobe/service/globe"
)

// ErrUnknownRegion is returned when filtering by a region that does not exist.
var ErrUnknownRegion = errors.New("unknown region")

// Entry is one country line of the report.
type Entry struct {
	Code        string
	Name        string
	Region      string
	Value       string
	Description string
	Hover       string
	Color       color.RGBA
}

// Count is the number of countries in a legend category.
type Count struct {
	Description string
	Color       color.RGBA
	Countries   int
}

// Report lists what the globe shows per country.
type Report struct {
	Title     string
	Entries   []Entry
	Counts    []Count
	Unmatched []attributes.Row
}

// Build creates a report of the scene. If region is set, only countries of
// that region or continent are listed.
func Build(scene *globe.Scene, result *attributes.Result, region string) (*Report, error) {
	var members []string
	if region != "" {
		members = countries.InRegion(region)
		if len(members) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
		}
	}

	r := &Report{
		Title: scene.Title,
	}
	if result != nil {
		r.Unmatched = result.Unmatched
	}

	counts := make(map[string]int, len(scene.Legend))
	for _, shape := range scene.Shapes {
		if shape.Skipped {
			continue
		}
		if members != nil {
			if _, found := slices.BinarySearch(members, shape.Code); !found {
				continue
			}
		}
		r.Entries = append(r.Entries, Entry{
			Code:        shape.Code,
			Name:        shape.Name,
			Region:      shape.Region,
			Value:       shape.Value,
			Description: shape.Description,
			Hover:       shape.HoverText(),
			Color:       shape.Fill,
		})
		counts[shape.Description]++
	}

	for _, item := range scene.Legend {
		r.Counts = append(r.Counts, Count{
			Description: item.Text,
			Color:       item.Color,
			Countries:   counts[item.Text],
		})
	}
	return r, nil
}

// Write prints the report as aligned tables. With styled output, category
// colors are shown as swatches.
func (r *Report) Write(w io.Writer, styled bool) error {
	title := r.Title
	if styled {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CODE\tNAME\tREGION\tVALUE\tHOVER")
	for _, e := range r.Entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%s\n",
			e.Code, e.Name, dash(e.Region), dash(e.Value), Swatch(e.Color, styled), e.Hover)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, c := range r.Counts {
		_, _ = fmt.Fprintf(tw, "   %d\t%s%s\n", c.Countries, Swatch(c.Color, styled), c.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Unmatched) > 0 {
		_, _ = fmt.Fprintf(w, "\n%d rows without geometry:\n", len(r.Unmatched))
		for _, row := range r.Unmatched {
			_, _ = fmt.Fprintf(w, "   line %d: %s (%s)\n", row.Line, row.Jurisdiction, row.Code)
		}
	}
	return nil
}

// Swatch returns a small colored block followed by a space, or nothing if
// output is not styled.
func Swatch(c color.RGBA, styled bool) string {
	if !styled {
		return ""
	}
	hex := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " "
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
