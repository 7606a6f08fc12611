package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	maxKeyPadding  = 50
	paragraphWidth = 60
)

func Color() aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodes())
}

func Bold(text string) string {
	return Color().Bold(text).String()
}

func RedText(text string) string {
	return Color().Red(text).String()
}

func GreenText(text string) string {
	return Color().Green(text).String()
}

func YellowText(text string) string {
	return Color().Yellow(text).String()
}

func MagentaText(text string) string {
	return Color().Magenta(text).String()
}

func GrayText(text string) string {
	return Color().Gray(12, text).String()
}

// KeyValues renders a map as aligned "key: value" lines, sorted by key
func KeyValues(kv map[string]string) string {
	if len(kv) == 0 {
		return ""
	}
	keys := make([]string, 0, len(kv))
	longest := 0
	for k := range kv {
		keys = append(keys, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(keys)
	if longest > maxKeyPadding {
		longest = maxKeyPadding
	}

	var b strings.Builder
	for _, k := range keys {
		pad := longest - len(k) + 1
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(&b, "%s:%s%s\n", k, strings.Repeat(" ", pad), kv[k])
	}
	return b.String()
}

func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

func OrderedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d) %s\n", i+1, item)
	}
	return b.String()
}

// Truncate shortens s to at most n characters by eliding its middle.
// At least one character from each end is always kept.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n < 5 {
		n = 5
	}
	remaining := n - 3
	front := (remaining + 1) / 2
	back := remaining - front
	return s[:front] + "..." + s[len(s)-back:]
}

// Paragraph wraps text on word boundaries at paragraphWidth columns
func Paragraph(text string) string {
	var b strings.Builder
	line := ""
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > paragraphWidth {
			b.WriteString(line + "\n")
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		b.WriteString(line + "\n")
	}
	return b.String()
}

func PrefixLines(text string, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		b.WriteString(prefix + line + "\n")
	}
	return b.String()
}
