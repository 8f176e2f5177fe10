package board

import (
	"errors"
	"testing"
)

func TestMoveRoundTrip(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			m := NewMove(row, col)
			got, err := ParseMove(m.String())
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", m.String(), err)
			}
			if got != m {
				t.Errorf("round trip: got %v, want %v", got, m)
			}
		}
	}
}

func TestParseMoveStripsWhitespace(t *testing.T) {
	m, err := ParseMove(" 1 2 ")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m != NewMove(1, 2) {
		t.Errorf("got %v, want (1,2)", m)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"3", "123", "ab", "33", ""} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidMoveString) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidMoveString", s, err)
		}
	}
}
