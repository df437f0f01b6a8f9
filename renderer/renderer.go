// Package renderer turns plan calculations into markdown reports. Report
// structs in this package hold only display-ready values; all math happens
// in the core package before a report is built.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates exposes the template files without the directory prefix.
var templates, _ = fs.Sub(templateFS, "templates")

// RenderProjection renders the ProjectionReport to a markdown string.
func RenderProjection(r *ProjectionReport) string {
	partials := map[string]string{
		"projection_title":   "projection_title.md",
		"projection_summary": "projection_summary.md",
	}
	return renderTemplate("projection", "projection.md", partials, r)
}

// RenderCalendar renders the CalendarReport to a markdown string.
func RenderCalendar(r *CalendarReport) string {
	partials := map[string]string{
		"calendar_title": "calendar_title.md",
		"calendar_grid":  "calendar_grid.md",
	}
	return renderTemplate("calendar", "calendar.md", partials, r)
}

// RenderSprint renders the SprintReport to a markdown string.
func RenderSprint(r *SprintReport) string {
	partials := map[string]string{
		"sprint_title": "sprint_title.md",
		"sprint_kpis":  "sprint_kpis.md",
	}
	return renderTemplate("sprint", "sprint.md", partials, r)
}

// RenderPhases renders the PhasesReport to a markdown string.
func RenderPhases(r *PhasesReport) string {
	partials := map[string]string{
		"phases_title":    "phases_title.md",
		"phases_progress": "phases_progress.md",
	}
	return renderTemplate("phases", "phases.md", partials, r)
}

// RenderSignals renders the SignalsReport to a markdown string.
func RenderSignals(r *SignalsReport) string {
	partials := map[string]string{
		"signals_title": "signals_title.md",
		"signals_list":  "signals_list.md",
	}
	return renderTemplate("signals", "signals.md", partials, r)
}

// RenderMonthly renders the MonthlyReport to a markdown string.
func RenderMonthly(r *MonthlyReport) string {
	partials := map[string]string{
		"monthly_title":   "monthly_title.md",
		"monthly_summary": "monthly_summary.md",
	}
	return renderTemplate("monthly", "monthly.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
