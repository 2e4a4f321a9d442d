package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/troop"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file
	// (readme.md aside) is listed in readme.md.
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

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range topicsInReadme {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in docs/readme.md", base)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	for _, title := range []string{"# Reconcile", "# Inventory", "# Cookie Share"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopics(*) misses %q", title)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) expected an error")
	}
}

// codeBlocks returns the fenced code blocks of a markdown file by language.
func codeBlocks(t *testing.T, file string) map[string][]string {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	blocks := make(map[string][]string)
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		lang := string(fcb.Language(content))
		blocks[lang] = append(blocks[lang], b.String())
		return ast.WalkContinue, nil
	})
	return blocks
}

func TestConfigExample(t *testing.T) {
	// the configuration documented in config.md must load.
	yamlBlocks := codeBlocks(t, "config.md")["yaml"]
	if len(yamlBlocks) != 1 {
		t.Fatalf("config.md has %d yaml blocks, want 1", len(yamlBlocks))
	}
	cfg, err := troop.DecodeConfig(strings.NewReader(yamlBlocks[0]))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.TroopNumber != "1234" || cfg.ExemptPackages != 50 || len(cfg.Tiers) != 2 {
		t.Errorf("DecodeConfig() = %+v", cfg)
	}
}

func TestCommandExamples(t *testing.T) {
	// every documented command line calls the cookies binary.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		for _, block := range codeBlocks(t, file)["bash"] {
			for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
				if !strings.HasPrefix(line, "cookies ") {
					t.Errorf("%s: command %q does not run cookies", file, line)
				}
			}
		}
	}
}
