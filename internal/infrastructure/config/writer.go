package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML with fields in struct order and tables
// sorted by name, so repeated saves produce identical files.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sortTOMLSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders table blocks alphabetically by header.
// Keys before the first header stay on top.
func sortTOMLSections(content string) string {
	type block struct {
		name  string
		lines []string
	}

	var top []string
	var blocks []block
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{name: m[1], lines: []string{line}})
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(blocks) == 0 {
			top = append(top, line)
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].name < blocks[j].name })

	var chunks []string
	if len(top) > 0 {
		chunks = append(chunks, strings.Join(top, "\n"))
	}
	for _, b := range blocks {
		chunks = append(chunks, strings.Join(b.lines, "\n"))
	}
	if len(chunks) == 0 {
		return ""
	}
	return strings.Join(chunks, "\n\n") + "\n"
}
