package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

const noMatches = "(no matching status codes)"

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	linkStyle  = lipgloss.NewStyle().Underline(true)

	classColors = map[int]lipgloss.Color{
		1: lipgloss.Color("12"),
		2: lipgloss.Color("10"),
		3: lipgloss.Color("14"),
		4: lipgloss.Color("11"),
		5: lipgloss.Color("9"),
	}
)

func codeStyle(s domain.Status) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	if c, ok := classColors[s.Class()]; ok {
		st = st.Foreground(c)
	}
	return st
}

func printStatus(w io.Writer, s domain.Status, format string) error {
	switch format {
	case "json":
		return writeJSON(w, s)
	case "yaml":
		return writeYAML(w, s)
	case "pretty", "":
		printPrettyStatus(w, s)
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func printRegistry(w io.Writer, reg domain.Registry, format string) error {
	if reg == nil {
		reg = domain.Registry{}
	}

	switch format {
	case "json":
		return writeJSON(w, reg)
	case "yaml":
		return writeYAML(w, reg)
	case "pretty", "":
		if len(reg) == 0 {
			fmt.Fprintln(w, noMatches)
			return nil
		}
		for _, s := range reg {
			fmt.Fprintf(w, "%s  %s  %s\n", codeStyle(s).Render(fmt.Sprintf("%d", s.Code)), s.Description, labelStyle.Render(s.Reference))
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func printPrettyStatus(w io.Writer, s domain.Status) {
	fmt.Fprintf(w, "%s %s\n", codeStyle(s).Render(fmt.Sprintf("%d", s.Code)), s.Description)
	if s.Reference != "" {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("reference:"), s.Reference)
	}
	if s.Link != "" {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("link:     "), linkStyle.Render(s.Link))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("unsupported format %q (expected pretty|json|yaml): %w", format, domain.ErrInvalidInput)
}
