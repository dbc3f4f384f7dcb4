package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TagList decodes either a YAML sequence or a comma separated string
type TagList []string

func (l *TagList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var tags []string
		for _, t := range strings.Split(node.Value, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		*l = tags
		return nil
	case yaml.SequenceNode:
		var tags []string
		if err := node.Decode(&tags); err != nil {
			return err
		}
		*l = tags
		return nil
	default:
		return fmt.Errorf("tags: expected string or list at line %d", node.Line)
	}
}
