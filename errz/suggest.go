package errz

import "sort"

// maxSuggestionDistance is the maximum edit distance for a suggestion to be
// considered relevant.
const maxSuggestionDistance = 3

// maxSuggestions caps how many candidates SuggestSimilar returns.
const maxSuggestions = 3

// SuggestSimilar returns up to maxSuggestions entries from candidates whose
// Levenshtein distance to target falls within a length-scaled threshold,
// closest first. Used to turn an UnexpectedToken's expected-symbol set into
// a "did you mean" hint when the input is plausibly a typo of one of them.
func SuggestSimilar(target string, candidates []string) []string {
	if target == "" || len(candidates) == 0 {
		return nil
	}
	type scored struct {
		value    string
		distance int
	}
	var results []scored
	threshold := maxSuggestionDistance
	switch {
	case len(target) <= 3:
		threshold = 1
	case len(target) <= 5:
		threshold = 2
	}
	for _, c := range candidates {
		if c == "" || c == target {
			continue
		}
		d := levenshteinDistance(target, c)
		if d <= threshold {
			results = append(results, scored{c, d})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].distance != results[j].distance {
			return results[i].distance < results[j].distance
		}
		return results[i].value < results[j].value
	})
	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.value
	}
	return out
}

func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
