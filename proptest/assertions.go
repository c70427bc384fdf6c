package proptest

import (
	"slices"
	"vitrine/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertItemsEqual(t *rapid.T, expected, actual []catalog.Item) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func assertSameIDs(t *rapid.T, expected, actual []int) {
	t.Helper()
	if !slices.Equal(expected, actual) {
		t.Fatalf("id mismatch: expected %v, got %v", expected, actual)
	}
}

func assertSubsequence(t *rapid.T, sub, seq []catalog.Item) {
	t.Helper()
	if !isSubsequence(sub, seq) {
		t.Fatalf("%v is not an ordered subsequence of %v", itemIDs(sub), itemIDs(seq))
	}
}

func intersectIDs(a, b []int) []int {
	var out []int
	for _, id := range a {
		if slices.Contains(b, id) {
			out = append(out, id)
		}
	}
	return out
}
