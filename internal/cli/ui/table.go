package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tiw/gaap-web-service/internal/cli/types"
)

// RenderKeyValues renders aligned key/value rows, padding keys by display
// width so wide characters line up.
func RenderKeyValues(rows [][2]string) string {
	keyWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > keyWidth {
			keyWidth = w
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		padding := keyWidth - runewidth.StringWidth(row[0])
		sb.WriteString(fmt.Sprintf("  %s%s  %s\n", row[0], strings.Repeat(" ", padding), row[1]))
	}
	return sb.String()
}

// RenderElementInfo renders one element's full resolution
func RenderElementInfo(info *types.ElementInfo) string {
	var sb strings.Builder

	sb.WriteString(Styles.Bold.Render(info.ElementName))
	sb.WriteString("\n")

	if info.Label != nil {
		sb.WriteString(fmt.Sprintf("  Label: %s\n", *info.Label))
	} else {
		sb.WriteString("  Label: (none)\n")
	}

	if len(info.References) == 0 {
		sb.WriteString("  References: (none)\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  References (%d):\n", len(info.References)))
	for i, ref := range info.References {
		sb.WriteString(fmt.Sprintf("  %d.\n", i+1))
		sb.WriteString(renderReference(ref))
	}
	return sb.String()
}

func renderReference(ref types.Reference) string {
	rows := make([][2]string, 0, 5)
	if ref.Topic != "" {
		rows = append(rows, [2]string{"Topic", ref.Topic})
	}
	if ref.SubTopic != "" {
		rows = append(rows, [2]string{"SubTopic", ref.SubTopic})
	}
	if ref.Section != "" {
		rows = append(rows, [2]string{"Section", ref.Section})
	}
	if ref.Paragraph != "" {
		rows = append(rows, [2]string{"Paragraph", ref.Paragraph})
	}
	if ref.URI != "" {
		rows = append(rows, [2]string{"URI", ref.URI})
	}

	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(RenderKeyValues(rows), "\n"), "\n") {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

// RenderElementList renders a numbered page of element names
func RenderElementList(elements []string, skip int) string {
	var sb strings.Builder
	for i, name := range elements {
		sb.WriteString(fmt.Sprintf("  %4d. %s\n", skip+i+1, name))
	}
	return sb.String()
}
