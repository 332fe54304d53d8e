package flatfile

import (
	"log/slog"
	"maps"
	"slices"
)

// nextID returns max(existing)+1, or 1 when items is empty. Freed ids below
// the maximum are never handed out again, but removing the highest id makes
// it available to the next call.
func nextID[K ~int, V any](items map[K]V) K {
	var maxID K
	for id := range items {
		if id > maxID {
			maxID = id
		}
	}

	return maxID + 1
}

func sortedValues[K ~int, V any](items map[K]V) []V {
	values := make([]V, 0, len(items))
	for _, id := range slices.Sorted(maps.Keys(items)) {
		values = append(values, items[id])
	}

	return values
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return logger
}
