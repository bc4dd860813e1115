// suggest.go - "did you mean" suggestions for unknown names.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package suggest computes Levenshtein-nearest name suggestions for
// unknown arguments and subcommands.
package suggest

import "sort"

// maxDistance is the largest edit distance we consider a plausible typo.
const maxDistance = 3

// maxSuggestions caps how many candidates we return.
const maxSuggestions = 3

// distance computes the Levenshtein edit distance between a and b using
// the classic dynamic-programming matrix with unit edit costs.
func distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	ra, rb := []rune(a), []rune(b)
	rows, cols := len(ra)+1, len(rb)+1

	dist := make([][]int, rows)
	for i := range dist {
		dist[i] = make([]int, cols)
		dist[i][0] = i
	}
	for j := 0; j < cols; j++ {
		dist[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			if ra[i-1] == rb[j-1] {
				dist[i][j] = dist[i-1][j-1]
				continue
			}
			sub := dist[i-1][j-1] + 1
			del := dist[i-1][j] + 1
			ins := dist[i][j-1] + 1
			dist[i][j] = min3(sub, del, ins)
		}
	}
	return dist[rows-1][cols-1]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// candidate pairs a name with its distance to the probe.
type candidate struct {
	name string
	dist int
}

// Names returns up to three names from candidates within edit distance 3
// of probe, sorted by ascending distance and then lexicographically.
//
// Leading dashes in probe are stripped before comparison, so that
// "--confi" suggests "config" rather than scoring against the dashes.
func Names(probe string, candidates []string) []string {
	probe = stripDashes(probe)

	var scored []candidate
	for _, name := range candidates {
		d := distance(probe, stripDashes(name))
		if d <= maxDistance {
			scored = append(scored, candidate{name: name, dist: d})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].dist != scored[j].dist {
			return scored[i].dist < scored[j].dist
		}
		return scored[i].name < scored[j].name
	})

	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}

	out := make([]string, 0, len(scored))
	for _, c := range scored {
		out = append(out, c.name)
	}
	return out
}

func stripDashes(s string) string {
	for len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	return s
}
