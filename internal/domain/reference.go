package domain

import (
	"fmt"
	"regexp"
)

const rfcEditorBase = "https://www.rfc-editor.org/rfc"

// referencePattern matches the first RFC citation in a registry notes column,
// e.g. "[RFC9110, Section 15.2.1]" or "[RFC8297]". Only three-part sections
// are linked; "Section 15" yields a bare RFC link.
var referencePattern = regexp.MustCompile(`RFC(?P<rfc>\d+)(?:, Section (?P<section>\d+\.\d+\.\d+))?`)

// Reference is an RFC citation with an optional section number.
type Reference struct {
	RFC     string
	Section string
}

// ParseReference extracts the first RFC citation from notes.
func ParseReference(notes string) (Reference, bool) {
	m := referencePattern.FindStringSubmatch(notes)
	if m == nil {
		return Reference{}, false
	}
	return Reference{
		RFC:     m[referencePattern.SubexpIndex("rfc")],
		Section: m[referencePattern.SubexpIndex("section")],
	}, true
}

// Link returns the rfc-editor.org URL for the reference.
func (r Reference) Link() string {
	link := fmt.Sprintf("%s/rfc%s.html", rfcEditorBase, r.RFC)
	if r.Section != "" {
		link += "#section-" + r.Section
	}
	return link
}

// LinkFor returns the derived link for a notes column, or "" when it cites no RFC.
func LinkFor(notes string) string {
	ref, ok := ParseReference(notes)
	if !ok {
		return ""
	}
	return ref.Link()
}
