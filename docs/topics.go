// Package docs embeds the documentation topics served by `inv topic`.
package docs

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic, or "*" for all
// topics concatenated.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := AllTopics()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, t := range topics {
			content, err := GetTopic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// AllTopics returns the sorted names of every embedded topic.
func AllTopics() ([]string, error) {
	files, err := docs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		topics = append(topics, strings.TrimSuffix(f.Name(), filepath.Ext(f.Name())))
	}
	sort.Strings(topics)
	return topics, nil
}
