package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rickgao/itto-feed/internal/itto"
)

func TestTextSinkLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf)

	itto.Dispatch(itto.SystemEvent{
		Header:    itto.Header{Timestamp: 7966630981189},
		EventCode: 'O',
	}, s)
	itto.Dispatch(itto.AddOrderLong{
		Header:   itto.Header{Timestamp: 30493499400893},
		OrderRef: 42,
		Side:     'S',
		OptionID: 3409,
		Price:    8005000,
		Volume:   1,
	}, s)
	itto.Dispatch(itto.SingleSideDelete{
		Header:   itto.Header{Timestamp: 27400997141376},
		OrderRef: 3000000744,
	}, s)

	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"02:12:46.630981189 S event=O",
		"08:28:13.499400893 A ref=42 side=S option=3409 price=800.5000 vol=1",
		"07:36:40.997141376 D ref=3000000744",
	}
	if len(lines) != len(want) {
		t.Fatalf("%d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTextSinkDirectoryLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf)

	itto.Dispatch(itto.OptionDirectory{
		Header:      itto.Header{Timestamp: 0},
		OptionID:    343971,
		Symbol:      "EPAM",
		ExpYear:     23, ExpMonth: 6, ExpDay: 16,
		StrikePrice: 2200000,
		OptionType:  'C',
		Underlying:  "EPAM",
		ClosingType: 'N', Tradable: 'Y', MPV: 'S',
	}, s)

	got := buf.String()
	for _, frag := range []string{"option=343971", "symbol=EPAM", "exp=2023-06-16", "strike=220.0000", "type=C"} {
		if !strings.Contains(got, frag) {
			t.Errorf("output %q missing %q", got, frag)
		}
	}
}
