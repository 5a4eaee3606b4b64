package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is the YAML document shape for catalog extensions. Entries whose
// code matches a built-in definition replace it; new codes append.
type Overlay struct {
	Orders       []OrderTemplate  `yaml:"orders"`
	Boosts       []BoostDef       `yaml:"boosts"`
	TeamRoles    []TeamRoleDef    `yaml:"team_roles"`
	Items        []ItemDef        `yaml:"items"`
	Achievements []AchievementDef `yaml:"achievements"`
	Events       []EventDef       `yaml:"events"`
	Skills       []SkillDef       `yaml:"skills"`
	Quests       []QuestDef       `yaml:"quests"`
}

// LoadOverlay reads an overlay file and applies it to the base catalog,
// returning a new validated catalog. Unknown YAML keys are rejected.
func LoadOverlay(base *Catalog, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overlay: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var ov Overlay
	if err := dec.Decode(&ov); err != nil {
		return nil, fmt.Errorf("parse catalog overlay %s: %w", path, err)
	}

	return base.Apply(ov)
}

// Apply merges an overlay into the catalog and returns the result
func (c *Catalog) Apply(ov Overlay) (*Catalog, error) {
	return New(
		mergeDefs(c.Orders, ov.Orders, func(o OrderTemplate) string { return o.Code }),
		mergeDefs(c.Boosts, ov.Boosts, func(b BoostDef) string { return b.Code }),
		mergeDefs(c.TeamRoles, ov.TeamRoles, func(t TeamRoleDef) string { return t.Code }),
		mergeDefs(c.Items, ov.Items, func(i ItemDef) string { return i.Code }),
		mergeDefs(c.Achievements, ov.Achievements, func(a AchievementDef) string { return a.Code }),
		mergeDefs(c.Events, ov.Events, func(e EventDef) string { return e.Code }),
		mergeDefs(c.Skills, ov.Skills, func(s SkillDef) string { return s.Code }),
		mergeDefs(c.Quests, ov.Quests, func(q QuestDef) string { return q.Code }),
	)
}

func mergeDefs[T any](base, extra []T, code func(T) string) []T {
	if len(extra) == 0 {
		return base
	}

	out := make([]T, len(base))
	copy(out, base)
	idx := make(map[string]int, len(out))
	for i, d := range out {
		idx[code(d)] = i
	}

	for _, d := range extra {
		if i, ok := idx[code(d)]; ok {
			out[i] = d
			continue
		}
		idx[code(d)] = len(out)
		out = append(out, d)
	}
	return out
}
