// Package leaderboard reads and writes the plain-text leaderboard format,
// one "<name> <score>" entry per line, and keeps a top-N ranking.
package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// DefaultSize is the number of entries a leaderboard keeps.
const DefaultSize = 10

// MaxNameLen is the longest name kept, in runes.
const MaxNameLen = 16

// anonymous stands in for names with nothing printable.
const anonymous = "anonymous"

// ErrMalformedLine is returned by Parse for lines that are not "<name> <score>".
var ErrMalformedLine = errors.New("leaderboard: malformed line")

// Entry is one leaderboard line.
type Entry struct {
	Name  string
	Score int
}

// Parse reads entries in file order. Blank lines are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, line, sc.Text())
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w %d: score %q", ErrMalformedLine, line, fields[1])
		}
		entries = append(entries, Entry{Name: fields[0], Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: read: %w", err)
	}
	return entries, nil
}

// Write writes entries one per line. Names are sanitized so the output
// always parses back.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "%s %d", SanitizeName(e.Name), e.Score)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("leaderboard: write: %w", err)
	}
	return nil
}

// SanitizeName turns free text into a single-word name: whitespace becomes
// underscores, unprintable runes are dropped and the result is cut to
// MaxNameLen runes. A name with nothing printable left is anonymous.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	n := 0
	for _, r := range name {
		if n == MaxNameLen {
			break
		}
		switch {
		case unicode.IsSpace(r):
			b.WriteRune('_')
		case unicode.IsPrint(r):
			b.WriteRune(r)
		default:
			continue
		}
		n++
	}
	if b.Len() == 0 {
		return anonymous
	}
	return b.String()
}

// Sort orders entries by score, highest first. Equal scores keep their order.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
}

// Insert ranks e among entries and returns the top n together with e's
// zero-based rank, or -1 when e did not make the cut. A new entry ranks below
// existing entries with the same score. entries is not modified.
func Insert(entries []Entry, e Entry, n int) ([]Entry, int) {
	ranked := make([]Entry, 0, len(entries)+1)
	ranked = append(ranked, entries...)
	Sort(ranked)

	rank := len(ranked)
	for i, x := range ranked {
		if e.Score > x.Score {
			rank = i
			break
		}
	}
	ranked = slices.Insert(ranked, rank, e)

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	if rank >= len(ranked) {
		rank = -1
	}
	return ranked, rank
}

// Qualifies reports whether score would make the top n.
func Qualifies(entries []Entry, score, n int) bool {
	_, rank := Insert(entries, Entry{Score: score}, n)
	return rank >= 0
}
