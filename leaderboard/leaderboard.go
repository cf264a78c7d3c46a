// Package leaderboard persists finished-run scores and returns the best of them
package leaderboard

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/lixenwraith/reef-dash/constants"
)

// ErrInvalidEntry is returned for negative scores
var ErrInvalidEntry = errors.New("invalid leaderboard entry")

// Entry is one recorded run
type Entry struct {
	ID    uuid.UUID `msgpack:"id"`
	Name  string    `msgpack:"name"`
	Score int       `msgpack:"score"`
	Time  time.Time `msgpack:"time"`
}

// Store is a leaderboard backend
// TopN returns at most n entries ordered by score descending, then time ascending, then ID
type Store interface {
	Append(ctx context.Context, name string, score int) error
	TopN(ctx context.Context, n int) ([]Entry, error)
}

// NormalizeName trims whitespace and control characters and caps the length in runes
// An empty result becomes the default player name
func NormalizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	runes := []rune(name)
	if len(runes) > constants.MaxNameLength {
		name = strings.TrimSpace(string(runes[:constants.MaxNameLength]))
	}
	if name == "" {
		return constants.DefaultPlayerName
	}
	return name
}

// newEntry validates and stamps a submission
func newEntry(name string, score int, now time.Time) (Entry, error) {
	if score < 0 {
		return Entry{}, ErrInvalidEntry
	}
	return Entry{
		ID:    uuid.New(),
		Name:  NormalizeName(name),
		Score: score,
		Time:  now.UTC(),
	}, nil
}

// Sort orders entries in place: score desc, time asc, ID asc
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Time.Equal(b.Time) {
			return a.Time.Before(b.Time)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
}

// top returns a sorted copy of at most n entries
func top(entries []Entry, n int) []Entry {
	if n <= 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	Sort(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
