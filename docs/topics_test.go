package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This test ensures that the documentation stays in sync with itself:
// every topic listed in readme.md loads, and every embedded .md file
// (besides readme.md) is listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// Every topic must start with a level-1 heading so that `inv topic` renders
// a titled document.
func TestTopicsStartWithTitle(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	parser := goldmark.DefaultParser()
	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic %q: %v", topic, err)
			}
			root := parser.Parse(text.NewReader([]byte(content)))
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading (got %T)", topic, first)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level-%d heading, want level 1", topic, heading.Level)
			}
		})
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic of an unknown topic should fail")
	}
}

func TestGetTopicStar(t *testing.T) {
	content, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) failed: %v", err)
	}
	for _, want := range []string{"# Commands", "# Consolidation", "# File Format"} {
		if !strings.Contains(content, want) {
			t.Errorf("GetTopic(*) is missing %q", want)
		}
	}
}
