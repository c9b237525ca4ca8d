package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/takaryo1010/giongo/internal/onomatopoeia"
)

const (
	startMarker = "<!-- STATS_START -->"
	endMarker   = "<!-- STATS_END -->"
)

// cmdRunner is a package-level variable that can be overridden for testing.
var cmdRunner = exec.Command

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: update-readme <dictionary> [readme]")
	}
	dictPath := args[0]
	readmePath := "README.md"
	if len(args) > 1 {
		readmePath = args[1]
	}

	data, err := os.ReadFile(dictPath)
	if err != nil {
		return fmt.Errorf("failed to read dictionary file: %w", err)
	}
	dict, err := onomatopoeia.Decode(bytes.NewReader(data), onomatopoeia.FormatForPath(dictPath))
	if err != nil {
		return err
	}

	markdown := generateStatsMarkdown(dict.Stats(), onomatopoeia.Digest(data), sourceRevision())
	if err := updateReadme(readmePath, markdown); err != nil {
		return err
	}

	fmt.Printf("Successfully updated %s with dictionary stats.\n", readmePath)
	return nil
}

// sourceRevision returns the short commit hash of the working tree, or ""
// outside a git checkout.
func sourceRevision() string {
	cmd := cmdRunner("git", "rev-parse", "--short", "HEAD")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(stdout.String())
}

func generateStatsMarkdown(stats onomatopoeia.Stats, digest, revision string) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("- Phonetic forms: %d\n", stats.Keys))
	builder.WriteString(fmt.Sprintf("- Senses: %d\n", stats.Senses))
	builder.WriteString(fmt.Sprintf("- Senses with details: %d\n", stats.WithDetails))
	builder.WriteString(fmt.Sprintf("- BLAKE3: `%s`\n", digest))
	if revision != "" {
		builder.WriteString(fmt.Sprintf("- Compiled at: `%s`\n", revision))
	}
	return builder.String()
}

func updateReadme(readmePath, statsMarkdown string) error {
	content, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", readmePath, err)
	}

	startIndex := bytes.Index(content, []byte(startMarker))
	endIndex := bytes.Index(content, []byte(endMarker))

	if startIndex == -1 || endIndex == -1 || startIndex >= endIndex {
		return fmt.Errorf("STATS_START or STATS_END markers not found or are in invalid order in %s", readmePath)
	}

	var buffer bytes.Buffer
	buffer.Write(content[:startIndex+len(startMarker)])
	buffer.WriteString("\n")
	buffer.WriteString(statsMarkdown)
	buffer.Write(content[endIndex:])

	if err := os.WriteFile(readmePath, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write updated %s: %w", readmePath, err)
	}

	return nil
}
