package taxonomy

import "strings"

// Normalize returns the canonical form of a skill name used for comparisons.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// ExpandAliases returns the canonical form of a skill followed by every known
// variant of it. The skill may be given either as a canonical key or as one
// of the variants. Unknown skills expand to themselves only.
func (t *Tables) ExpandAliases(skill string) []string {
	key := Normalize(skill)

	if i, ok := t.aliasIdx[key]; ok {
		return t.expandGroup(i)
	}

	for i, g := range t.aliases {
		for _, variant := range g.Variants {
			if Normalize(variant) == key {
				return t.expandGroup(i)
			}
		}
	}

	return []string{key}
}

func (t *Tables) expandGroup(i int) []string {
	g := t.aliases[i]
	out := make([]string, 0, len(g.Variants)+1)
	out = append(out, Normalize(g.Skill))
	for _, variant := range g.Variants {
		out = append(out, Normalize(variant))
	}
	return out
}
