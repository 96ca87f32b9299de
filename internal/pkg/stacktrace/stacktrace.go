package stacktrace

import "strings"

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" frames found in
// a raw debug.Stack dump, in order.
func InternalPaths(stack []byte) []string {
	var paths []string
	for line := range strings.Lines(string(stack)) {
		line = strings.TrimSpace(line)

		_, after, found := strings.Cut(line, "/internal/")
		if !found {
			continue
		}

		idx := strings.Index(after, ".go:")
		if idx == -1 {
			continue
		}

		frame, _, _ := strings.Cut(after, " ")
		paths = append(paths, "internal/"+frame)
	}
	return paths
}
