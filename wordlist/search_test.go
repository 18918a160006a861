package wordlist

import (
	"reflect"
	"testing"
)

func TestSearch(t *testing.T) {
	type Fixture struct {
		Query      string
		Suffixes   []string
		ExactMatch bool
	}

	fixtures := []*Fixture{
		{
			Query:      "",
			Suffixes:   []string{},
			ExactMatch: false,
		},
		{
			Query:      "zzz",
			Suffixes:   []string{},
			ExactMatch: false,
		},
		{
			Query:      "abd",
			Suffixes:   []string{"ucts"},
			ExactMatch: false,
		},
		{
			Query:      "qu",
			Suffixes:   []string{"een", "ick", "ote"},
			ExactMatch: false,
		},
		{
			Query:      "queen",
			Suffixes:   []string{""},
			ExactMatch: true,
		},
		{
			Query:      "zo",
			Suffixes:   []string{"diac", "mbie", "nes", "om"},
			ExactMatch: false,
		},
		{
			Query:      "water",
			Suffixes:   []string{"", "fall"},
			ExactMatch: true,
		},
		{
			Query:      "wate",
			Suffixes:   []string{"r", "rfall"},
			ExactMatch: false,
		},
		{
			Query:      "dwel",
			Suffixes:   []string{"t"},
			ExactMatch: false,
		},
	}

	for _, fixture := range fixtures {
		result := Search(fixture.Query)
		if !reflect.DeepEqual(result.Suffixes, fixture.Suffixes) {
			t.Errorf(
				"wrong word suffix search results on term %q\nWanted %#v\nGot    %#v",
				fixture.Query, fixture.Suffixes, result.Suffixes,
			)
		}

		if result.ExactMatch != fixture.ExactMatch {
			t.Errorf(
				"expected word search for %q to return ExactMatch=%v, got %v",
				fixture.Query, fixture.ExactMatch, result.ExactMatch,
			)
		}
	}
}

func TestSearchFindsEveryWord(t *testing.T) {
	for _, word := range WordList {
		result := Search(word)
		if !result.ExactMatch {
			t.Fatalf("expected to find exact match for word %q", word)
		}
		if result.Suffixes[0] != "" {
			t.Fatalf("expected first suffix for word %q to be empty string", word)
		}
	}
}
