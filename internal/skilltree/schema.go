package skilltree

import "github.com/ameya/eduplan/internal/llm"

// profileSchema builds the JSON schema for a skill-tree response:
// one integer score per node, nothing else.
func profileSchema(nodes []string) *llm.Schema {
	properties := make(map[string]any, len(nodes))
	required := make([]any, 0, len(nodes))
	for _, node := range nodes {
		properties[node] = map[string]any{
			"type":    "integer",
			"minimum": MinScore,
			"maximum": MaxScore,
		}
		required = append(required, node)
	}

	return &llm.Schema{
		Name:        "skill-tree",
		Description: "Per-node capability scores for one student",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           properties,
			"required":             required,
			"additionalProperties": false,
		},
	}
}
