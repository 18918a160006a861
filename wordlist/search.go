package wordlist

import (
	"strings"
)

// SearchResult is returned by the Search function. It carries the suffixes
// which could complete the input query into a valid dictionary word,
// including the empty string if the query itself is a word.
type SearchResult struct {
	// ExactMatch is true if the input query is itself a word in the
	// dictionary. When true, the first element of Suffixes is the
	// empty string.
	ExactMatch bool

	// Suffixes is the set of suffix strings which can be appended to the
	// original query to produce a valid dictionary word.
	Suffixes []string
}

// Search runs a binary search over the dictionary for words matching the
// given prefix query. Useful for interactive autocomplete when entering a
// phrase word by word.
//
// The query must be lower case to return any results.
func Search(query string) *SearchResult {
	result := &SearchResult{Suffixes: []string{}}
	if query == "" {
		return result
	}

	back := -1
	front := len(WordList)
	cursor := (front + back) / 2

	for {
		if strings.HasPrefix(WordList[cursor], query) {
			if query == WordList[cursor] {
				result.ExactMatch = true
			}

			beginIndex := 0
			endIndex := 0

			// Widen leftward to the first prefix match.
			for beginIndex = cursor - 1; ; beginIndex-- {
				if beginIndex < 0 || !strings.HasPrefix(WordList[beginIndex], query) {
					beginIndex += 1
					break
				}
				if query == WordList[beginIndex] {
					result.ExactMatch = true
				}
			}

			// Widen rightward to the last prefix match.
			for endIndex = cursor + 1; ; endIndex++ {
				if endIndex >= len(WordList) || !strings.HasPrefix(WordList[endIndex], query) {
					endIndex -= 1
					break
				}
				if query == WordList[endIndex] {
					result.ExactMatch = true
				}
			}

			result.Suffixes = make([]string, 1+endIndex-beginIndex)
			for j := range result.Suffixes {
				result.Suffixes[j] = strings.TrimPrefix(WordList[beginIndex+j], query)
			}
			return result
		}

		if query < WordList[cursor] {
			front = cursor
		} else {
			back = cursor
		}

		cursor = (front + back) / 2

		if cursor == front || cursor == back {
			return result
		}
	}
}
