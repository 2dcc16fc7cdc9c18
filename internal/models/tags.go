package models

import (
	"sort"
	"strings"
)

// ParseTags разбирает ввод вида "AI, Plants ,Bio" в список меток.
// Пустые значения и повторы отбрасываются, порядок первого появления сохраняется.
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	seen := make(map[string]struct{}, len(parts))
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

// SortedKeys возвращает элементы множества в лексикографическом порядке
func SortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
