// Package render produces the textual forms of declaration trees and plans
// shown by the CLI dry run and used in test failure messages.
package render

import (
	"strings"

	"github.com/specialistvlad/gospec/internal/builder"
	"github.com/specialistvlad/gospec/internal/example"
	"github.com/specialistvlad/gospec/internal/focus"
)

const indentUnit = "  "

// Tree renders a group and everything below it, one declaration per line,
// indented two spaces per level. Children keep their declaration order.
// Declarations with a marker get it appended in brackets.
func Tree(group *builder.GroupDeclaration) string {
	if group == nil {
		return ""
	}
	var lines []string
	lines = writeTree(lines, group, "")
	return strings.Join(lines, "\n")
}

func writeTree(lines []string, d builder.Declaration, indent string) []string {
	lines = append(lines, indent+d.Name()+suffix(d.DeclaredMarker()))
	g, ok := d.(*builder.GroupDeclaration)
	if !ok {
		return lines
	}
	for _, child := range g.Children {
		lines = writeTree(lines, child, indent+indentUnit)
	}
	return lines
}

func suffix(m focus.Marker) string {
	if m == focus.Default {
		return ""
	}
	return " [" + m.String() + "]"
}

// Plan renders a compiled plan in execution order. Group headers are printed
// whenever the container path changes, so a plan compiled in declaration
// order renders like its tree without the markers. Ignored examples are
// tagged.
func Plan(plan *example.Plan) string {
	if plan == nil {
		return ""
	}
	var (
		lines []string
		open  []string
	)
	for _, e := range plan.Examples() {
		containers := e.ContainerDescriptions()
		common := 0
		for common < len(open) && common < len(containers) && open[common] == containers[common] {
			common++
		}
		for depth := common; depth < len(containers); depth++ {
			lines = append(lines, strings.Repeat(indentUnit, depth)+containers[depth])
		}
		open = containers

		line := strings.Repeat(indentUnit, len(containers)) + e.Description()
		if e.ShouldBeIgnored() {
			line += " (ignored)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
