// Package wordlist exposes the fixed 1626-word English dictionary which
// mnemonic phrases are drawn from, with O(1) lookups in both directions.
package wordlist

// Count is the number of words in the dictionary.
const Count = 1626

// WordMap maps every word in WordList back to its index.
var WordMap = make(map[string]uint16, Count)

func init() {
	for i, word := range WordList {
		WordMap[word] = uint16(i)
	}
}
