package itto

import (
	"reflect"
	"testing"
)

func TestDecodeFixtures(t *testing.T) {
	want := map[byte]Message{
		'S': SystemEvent{
			Header:    Header{Tracking: 0, Timestamp: 0x073EE035AE45},
			EventCode: 'O',
		},
		'R': OptionDirectory{
			Header:      Header{Tracking: 0, Timestamp: 0x07D796115F18},
			OptionID:    342947,
			Symbol:      "EPAM",
			ExpYear:     23, ExpMonth: 6, ExpDay: 16,
			StrikePrice: 2200000,
			OptionType:  'C',
			Source:      1,
			Underlying:  "EPAM",
			ClosingType: 'N', Tradable: 'Y', MPV: 'S',
		},
		'H': TradingAction{
			Header:   Header{Tracking: 0, Timestamp: 0x07D7961BDC7C},
			OptionID: 342947,
			State:    'T',
		},
		'O': OptionOpen{
			Header:    Header{Tracking: 5, Timestamp: 0x1F1AD982B4D4},
			OptionID:  251225,
			OpenState: 'Y',
		},
		'a': AddOrderShort{
			Header:   Header{Tracking: 0, Timestamp: 0x13F8F6497492},
			OrderRef: 0xB2D05E08,
			Side:     'S',
			OptionID: 136005,
			Price:    5,
			Volume:   8,
		},
		'A': AddOrderLong{
			Header:   Header{Tracking: 0, Timestamp: 0x1BBBD23322BD},
			OrderRef: 0xB2D142F0,
			Side:     'S',
			OptionID: 3409,
			Price:    8005000,
			Volume:   1,
		},
		'j': AddQuoteShort{
			Header:   Header{Tracking: 0, Timestamp: 0x1ED4F57DBDA2},
			BidRef:   0xB3285368,
			AskRef:   0xB328536C,
			OptionID: 123841,
			BidPrice: 120, BidSize: 1,
			AskPrice: 620, AskSize: 1,
		},
		'J': AddQuoteLong{
			Header:   Header{Tracking: 0, Timestamp: 0x1ED5011220A2},
			BidRef:   0xB328A3E4,
			AskRef:   0xB328A3E8,
			OptionID: 58384,
			BidPrice: 6690000, BidSize: 5,
			AskPrice: 6841000, AskSize: 5,
		},
		'E': OrderExecuted{
			Header:      Header{Tracking: 1, Timestamp: 0x1F1AE4523083},
			OrderRef:    0xB3A08290,
			Contracts:   1,
			CrossNumber: 1000136,
			MatchNumber: 5000456,
		},
		'C': OrderExecutedPrice{
			Header:      Header{Tracking: 1, Timestamp: 0x1F1AD982B4D4},
			OrderRef:    0xB2D18914,
			CrossNumber: 1000000,
			MatchNumber: 5000008,
			Printable:   'N',
			Price:       17600,
			Volume:      1,
		},
		'X': OrderCancel{
			Header:    Header{Tracking: 1, Timestamp: 0x1F1C040B451C},
			OrderRef:  0xB37B95DC,
			Cancelled: 3,
		},
		'u': ReplaceShort{
			Header:      Header{Tracking: 0, Timestamp: 0x1D9D3258C732},
			OrderRef:    0xB3059C0C,
			NewOrderRef: 0xB305B7E0,
			Price:       25,
			Volume:      10,
		},
		'U': ReplaceLong{
			Header:      Header{Tracking: 0, Timestamp: 0x1ED50650B1F6},
			OrderRef:    0xB328B014,
			NewOrderRef: 0xB328D0D0,
			Price:       6610500,
			Volume:      4,
		},
		'D': SingleSideDelete{
			Header:   Header{Tracking: 0, Timestamp: 0x18EBCAB37B80},
			OrderRef: 0xB2D06CE8,
		},
		'G': SingleSideUpdate{
			Header:   Header{Tracking: 0, Timestamp: 0x1ED5621533F8},
			OrderRef: 0xB3288098,
			Reason:   'U',
			Price:    781000,
			Volume:   1,
		},
		'k': QuoteReplaceShort{
			Header:    Header{Tracking: 0, Timestamp: 0x1ED500AC76EF},
			BidRef:    0xB328550C,
			NewBidRef: 0xB3288EB0,
			AskRef:    0xB3285510,
			NewAskRef: 0xB3288EB4,
			BidPrice:  0, BidSize: 0,
			AskPrice: 500, AskSize: 1,
		},
		'K': QuoteReplaceLong{
			Header:    Header{Tracking: 0, Timestamp: 0x1ED5623E278C},
			BidRef:    0xB328A524,
			NewBidRef: 0xB329D9A4,
			AskRef:    0xB328A528,
			NewAskRef: 0xB329D9A8,
			BidPrice:  8303000, BidSize: 5,
			AskPrice: 8479000, AskSize: 5,
		},
		'Y': QuoteDelete{
			Header: Header{Tracking: 0, Timestamp: 0x1ED4F9300803},
			BidRef: 0xB3285550,
			AskRef: 0xB3285554,
		},
		'Q': CrossTrade{
			Header:      Header{Tracking: 5, Timestamp: 0x1F1AD982B4D4},
			OptionID:    251225,
			CrossNumber: 1000000,
			MatchNumber: 5000024,
			CrossType:   'O',
			Price:       17600,
			Volume:      2,
		},
		'I': NOII{
			Header:             Header{Tracking: 0, Timestamp: 0x1ED4F96C101C},
			AuctionID:          1000004,
			AuctionType:        'O',
			PairedContracts:    1,
			ImbalanceDirection: 'B',
			OptionID:           1719,
			ImbalancePrice:     4800,
			ImbalanceVolume:    0,
			Reserved:           "",
		},
	}

	for tag, raw := range fixtures {
		if len(raw) != wantLengths[tag] {
			t.Fatalf("fixture %q is %d bytes, want %d", tag, len(raw), wantLengths[tag])
		}
		got := Decode(raw)
		if got == nil {
			t.Errorf("Decode(%q fixture) = nil", tag)
			continue
		}
		if got.Tag() != tag {
			t.Errorf("Decode(%q fixture).Tag() = %q", tag, got.Tag())
		}
		if !reflect.DeepEqual(got, want[tag]) {
			t.Errorf("Decode(%q fixture) =\n%+v\nwant\n%+v", tag, got, want[tag])
		}
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	if got := Decode([]byte{0xFE, 0x00, 0x00}); got != nil {
		t.Errorf("Decode(unknown tag) = %v, want nil", got)
	}
}

func TestDecodeTruncatedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Decode of truncated message did not panic")
		}
	}()
	Decode(fixtures['D'][:10])
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	// A slice longer than the layout decodes identically; extra bytes
	// belong to the next message.
	raw := append(append([]byte{}, fixtures['D']...), 0xAB, 0xCD)
	if !reflect.DeepEqual(Decode(raw), Decode(fixtures['D'])) {
		t.Error("trailing bytes changed the decoded message")
	}
}
