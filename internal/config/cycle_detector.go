package config

import (
	"regexp"
	"sort"
)

var varReference = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`)

// themeReferences maps each theme variable to the theme variables its value
// reads through var(). References to variables outside the theme are ignored.
func themeReferences(theme map[string]string) map[string][]string {
	graph := make(map[string][]string, len(theme))
	for name, value := range theme {
		var deps []string
		for _, m := range varReference.FindAllStringSubmatch(value, -1) {
			if _, ok := theme[m[1]]; ok {
				deps = append(deps, m[1])
			}
		}
		graph[name] = deps
	}
	return graph
}

// detectCycle returns the variables participating in a var() reference
// cycle, or nil if no cycle exists. Browsers treat every variable on such a
// cycle as invalid.
func detectCycle(theme map[string]string) []string {
	graph := themeReferences(theme)

	visiting := make(map[string]bool, len(graph))
	visited := make(map[string]bool, len(graph))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, dep := range graph[node] {
			if visited[dep] {
				continue
			}
			if visiting[dep] {
				if idx := indexOf(stack, dep); idx >= 0 {
					cycle = append([]string{}, stack[idx:]...)
					cycle = append(cycle, dep)
				}
				return true
			}
			if dfs(dep) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
