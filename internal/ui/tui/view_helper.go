package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

var classNames = map[int]string{
	1: "Informational",
	2: "Success",
	3: "Redirection",
	4: "Client Error",
	5: "Server Error",
}

func className(class int) string {
	if n, ok := classNames[class]; ok {
		return n
	}
	return "Unknown"
}

func renderStatusDetails(t Theme, s domain.Status) string {
	var b strings.Builder

	b.WriteString(t.Code(s.Class()).Render(fmt.Sprintf("%d", s.Code)))
	b.WriteString(" ")
	b.WriteString(t.Title.Render(s.Description))
	b.WriteString("\n\n")

	b.WriteString(t.Label.Render("class:     "))
	b.WriteString(fmt.Sprintf("%dxx %s\n", s.Class(), className(s.Class())))

	b.WriteString(t.Label.Render("reference: "))
	if s.Reference == "" {
		b.WriteString("(none)\n")
	} else {
		b.WriteString(s.Reference + "\n")
	}

	b.WriteString(t.Label.Render("link:      "))
	if s.Link == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(t.Link.Render(s.Link))
	}
	return b.String()
}
