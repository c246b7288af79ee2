package leaderboard

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := "alice 1200\n\nbob 950\r\ncarol 3000\n"

	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	expected := []Entry{{"alice", 1200}, {"bob", 950}, {"carol", 3000}}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Parse() = %v, expected %v", entries, expected)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing score", "alice\n"},
		{"extra field", "alice smith 10\n"},
		{"non-numeric score", "alice ten\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedLine) {
				t.Errorf("Parse() error = %v, expected ErrMalformedLine", err)
			}
		})
	}
}

func TestWriteParsesBack(t *testing.T) {
	entries := []Entry{{"alice", 1200}, {"bob the brave", 950}, {"", 10}, {"\x01\x02", 5}}

	var buf bytes.Buffer
	if err := Write(&buf, entries); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if got := buf.String(); got != "alice 1200\nbob_the_brave 950\nanonymous 10\nanonymous 5" {
		t.Errorf("Write() = %q", got)
	}

	back, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(back) != 4 || back[1].Name != "bob_the_brave" || back[3] != (Entry{"anonymous", 5}) {
		t.Errorf("Parse(Write()) = %v", back)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alice", "alice"},
		{"  spaced  out ", "spaced__out"},
		{"", "anonymous"},
		{"a\tb", "a_b"},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop"},
		{"naïve", "naïve"},
		{"\x01\x02", "anonymous"},
		{"\x01 \x02", "_"},
		{"bell\a", "bell"},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestInsert(t *testing.T) {
	board := []Entry{{"a", 100}, {"b", 300}, {"c", 200}}

	ranked, rank := Insert(board, Entry{"new", 250}, 10)
	if rank != 1 {
		t.Errorf("rank = %d, expected 1", rank)
	}
	expected := []Entry{{"b", 300}, {"new", 250}, {"c", 200}, {"a", 100}}
	if !reflect.DeepEqual(ranked, expected) {
		t.Errorf("Insert() = %v, expected %v", ranked, expected)
	}
	if board[0].Name != "a" {
		t.Error("Insert() must not modify its input")
	}
}

func TestInsertTiesRankBelowExisting(t *testing.T) {
	board := []Entry{{"a", 300}, {"b", 200}}

	ranked, rank := Insert(board, Entry{"new", 200}, 10)
	if rank != 2 || ranked[2].Name != "new" {
		t.Errorf("rank = %d, board %v: the newcomer should rank below the existing 200", rank, ranked)
	}
}

func TestInsertTopN(t *testing.T) {
	var board []Entry
	for i := range 10 {
		board = append(board, Entry{Name: "p", Score: (i + 1) * 100})
	}

	ranked, rank := Insert(board, Entry{"low", 100}, DefaultSize)
	if rank != -1 || len(ranked) != DefaultSize {
		t.Errorf("tie with the last place should miss the cut: rank %d len %d", rank, len(ranked))
	}
	if Qualifies(board, 100, DefaultSize) {
		t.Error("Qualifies(100) = true on a full board whose lowest score is 100")
	}
	if !Qualifies(board, 101, DefaultSize) {
		t.Error("Qualifies(101) = false, expected true")
	}
	if !Qualifies(nil, 0, DefaultSize) {
		t.Error("any score qualifies on an empty board")
	}

	ranked, rank = Insert(board, Entry{"top", 5000}, DefaultSize)
	if rank != 0 || len(ranked) != DefaultSize || ranked[DefaultSize-1].Score != 200 {
		t.Errorf("Insert(top) = rank %d, board %v", rank, ranked)
	}
}
