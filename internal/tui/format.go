package tui

import (
	"os"
	"path/filepath"
	"strings"
)

// wrapText wraps text to fit within width, with optional indent for continuation lines.
// maxLines limits output; 0 means unlimited. Truncates with "..." if exceeded.
func wrapText(text string, width int, indent string, maxLines int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	currentLine := words[0]
	contWidth := width - len(indent)
	lineWidth := width

	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= lineWidth {
			currentLine += " " + word
			continue
		}
		lines = append(lines, currentLine)
		if maxLines > 0 && len(lines) >= maxLines {
			return truncateLast(lines)
		}
		lineWidth = contWidth
		currentLine = indent + word
	}
	lines = append(lines, currentLine)

	return strings.Join(lines, "\n")
}

func truncateLast(lines []string) string {
	last := lines[len(lines)-1]
	if len(last) > 3 {
		lines[len(lines)-1] = last[:len(last)-3] + "..."
	}
	return strings.Join(lines, "\n")
}

func sectionHeader(title string, width int) string {
	padding := max(1, (width-len(title)-2)/2)
	line := strings.Repeat("─", padding)
	return labelStyle.Render(line+" ") + valueStyle.Render(title) + labelStyle.Render(" "+line)
}

func abbreviatePath(path string) string {
	home, err := os.UserHomeDir()
	if err == nil && home != "" && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	parts := strings.Split(path, string(filepath.Separator))
	if len(parts) > 3 {
		return filepath.Join(parts[len(parts)-3:]...)
	}
	return path
}
