// SPDX-License-Identifier: MIT

package search

// Partition splits items into at most n contiguous chunks whose lengths
// differ by at most one. Earlier chunks take the remainder. n is clamped
// to [1, len(items)]; an empty input yields nil. Chunks alias items.
func Partition[T any](items []T, n int) [][]T {
	if len(items) == 0 {
		return nil
	}
	n = max(1, min(n, len(items)))

	base, extra := len(items)/n, len(items)%n
	chunks := make([][]T, 0, n)
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + base
		if i < extra {
			hi++
		}
		chunks = append(chunks, items[lo:hi:hi])
		lo = hi
	}
	return chunks
}
