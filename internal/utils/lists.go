package utils

import "strings"

// SplitList splits a comma separated value such as "en, fa", trimming entries
// and dropping blank ones. An all-blank input returns nil.
func SplitList(input string) []string {
	var items []string
	for _, item := range strings.Split(input, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
