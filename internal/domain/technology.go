package domain

import "strings"

// TechID identifies a technology a candidate can pick
type TechID string

const (
	TechPython     TechID = "Python"
	TechJavaScript TechID = "JavaScript"
	TechDjango     TechID = "Django"
	TechReact      TechID = "React"
	TechNodeJS     TechID = "Node.js"
	TechSQL        TechID = "SQL"
	TechJava       TechID = "Java"
	TechHTML       TechID = "HTML"
	TechCSS        TechID = "CSS"
)

// Technologies is the closed set offered on the tech stack form, in display order
var Technologies = []TechID{
	TechPython,
	TechJavaScript,
	TechDjango,
	TechReact,
	TechNodeJS,
	TechSQL,
	TechJava,
	TechHTML,
	TechCSS,
}

// IsValid reports whether t belongs to the catalog
func (t TechID) IsValid() bool {
	for _, known := range Technologies {
		if t == known {
			return true
		}
	}
	return false
}

// UniqueTechIDs drops repeated entries, keeping the first occurrence order
func UniqueTechIDs(stack []TechID) []TechID {
	seen := make(map[TechID]struct{}, len(stack))
	out := make([]TechID, 0, len(stack))
	for _, t := range stack {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// JoinTechIDs renders a stack the way the greeting shows it: "Python, SQL"
func JoinTechIDs(stack []TechID) string {
	names := make([]string, len(stack))
	for i, t := range stack {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
