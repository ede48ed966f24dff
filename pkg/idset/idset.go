// Package idset treats identifier slices as ordered sets.
package idset

import "slices"

// Contains reports whether id is in ids.
func Contains(ids []string, id string) bool {
	return slices.Contains(ids, id)
}

// Add returns a copy of ids with id appended if absent.
func Add(ids []string, id string) []string {
	out := slices.Clone(ids)
	if slices.Contains(out, id) {
		return out
	}
	return append(out, id)
}

// Remove returns a copy of ids without any occurrence of id.
func Remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Normalize drops empty and duplicate ids, keeping first occurrences.
func Normalize(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
