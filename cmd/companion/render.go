package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/companion/planner"
)

// Garden palette.
var (
	colorLeaf  = lipgloss.Color("#5FAF5F")
	colorSoil  = lipgloss.Color("#AF875F")
	colorMuted = lipgloss.Color("#808080")
	colorWarn  = lipgloss.Color("#F4D03F")
)

type styles struct {
	title       lipgloss.Style
	heading     lipgloss.Style
	preferred   lipgloss.Style
	recommended lipgloss.Style
	muted       lipgloss.Style
	warning     lipgloss.Style
}

// renderer writes command results as text, JSON or YAML.
type renderer struct {
	w      io.Writer
	format string
	st     styles
}

// newRenderer binds styles to w so that color is only emitted on terminals.
func newRenderer(w io.Writer, format string) renderer {
	r := lipgloss.NewRenderer(w)

	return renderer{
		w:      w,
		format: format,
		st: styles{
			title:       r.NewStyle().Bold(true).Foreground(colorLeaf),
			heading:     r.NewStyle().Bold(true).Foreground(colorSoil),
			preferred:   r.NewStyle().Foreground(colorLeaf),
			recommended: r.NewStyle().Italic(true).Foreground(colorSoil),
			muted:       r.NewStyle().Foreground(colorMuted),
			warning:     r.NewStyle().Foreground(colorWarn),
		},
	}
}

// structured encodes v as JSON or YAML; ok is false for text output.
func (r renderer) structured(v any) (ok bool, err error) {
	switch r.format {
	case "json":
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func (r renderer) plan(res *planner.Result) error {
	if ok, err := r.structured(res); ok {
		return err
	}

	var b strings.Builder
	b.WriteString(r.st.title.Render("Garden plan") + "\n")
	if len(res.Beds) == 0 {
		b.WriteString(r.st.muted.Render("no plants selected") + "\n")
	}
	for i, bed := range res.Beds {
		b.WriteString("\n" + r.st.heading.Render(fmt.Sprintf("Bed %d", i+1)) +
			r.st.muted.Render(fmt.Sprintf("  score %d", bed.Score)) + "\n")
		for _, p := range bed.Plants {
			style := r.st.preferred
			if p.Role == "recommended" {
				style = r.st.recommended
			}
			fmt.Fprintf(&b, "  %-16s %s\n", p.Name, style.Render(p.Role))
		}
		for _, e := range bed.Effects {
			line := e.Helper + " → " + e.Helped
			if e.Effect != "" {
				line += " (" + e.Effect + ")"
			}
			b.WriteString("    " + r.st.muted.Render(line) + "\n")
		}
	}
	r.unknown(&b, res.Unknown)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r renderer) companions(rep companionsReport) error {
	if ok, err := r.structured(rep); ok {
		return err
	}

	var b strings.Builder
	b.WriteString(r.st.title.Render("Companions") + "\n")
	b.WriteString("Plants that help each other:\n")
	for _, c := range rep.Companions {
		fmt.Fprintf(&b, "- %s helps %s\n", r.st.preferred.Render(c.Plant), strings.Join(c.Helps, ", "))
	}
	b.WriteString("\n" + r.st.title.Render("Recommendations") + "\n")
	b.WriteString("Great plants to add to your garden:\n")
	for _, h := range rep.Recommendations {
		fmt.Fprintf(&b, "- %s helps %s\n", r.st.recommended.Render(h.Plant), strings.Join(h.Helps, ", "))
	}
	r.unknown(&b, rep.Unknown)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r renderer) helpers(rep helpersReport) error {
	if ok, err := r.structured(rep); ok {
		return err
	}

	var b strings.Builder
	b.WriteString(r.st.title.Render(rep.Plant) + "\n")
	section := func(title string, rels []relation) {
		b.WriteString(r.st.heading.Render(title) + "\n")
		if len(rels) == 0 {
			b.WriteString("  " + r.st.muted.Render("none") + "\n")
		}
		for _, rel := range rels {
			line := "  " + rel.Plant
			if rel.Effect != "" {
				line += " " + r.st.muted.Render("("+rel.Effect+")")
			}
			b.WriteString(line + "\n")
		}
	}
	section("Helped by", rep.HelpedBy)
	section("Helps", rep.Helps)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r renderer) plants(list plantList) error {
	if ok, err := r.structured(list); ok {
		return err
	}
	_, err := io.WriteString(r.w, strings.Join(list.Plants, "\n")+"\n")
	return err
}

func (r renderer) unknown(b *strings.Builder, names []string) {
	if len(names) > 0 {
		b.WriteString("\n" + r.st.warning.Render("Unknown plants: "+strings.Join(names, ", ")) + "\n")
	}
}
