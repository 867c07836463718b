package itto

// Decode turns a complete wire message into its typed form. The slice
// must start at a recognized tag byte and hold at least the tag's full
// length; the framer guarantees both before calling. A nil return
// means the tag is unknown.
func Decode(b []byte) Message {
	l := LayoutFor(b[0])
	if l == nil {
		return nil
	}
	if len(b) < l.Length {
		// Callers check length first; reaching here is a bug.
		panic("itto: decode of truncated message")
	}

	hdr := Header{
		Tracking:  Uint16(b[offTracking:]),
		Timestamp: Uint48(b[offTime:]),
	}

	switch b[0] {
	case 'S':
		return SystemEvent{Header: hdr, EventCode: b[9]}
	case 'R':
		return OptionDirectory{
			Header:      hdr,
			OptionID:    Uint32(b[9:]),
			Symbol:      TrimASCII(b[13:19]),
			ExpYear:     b[19],
			ExpMonth:    b[20],
			ExpDay:      b[21],
			StrikePrice: Uint32(b[22:]),
			OptionType:  b[26],
			Source:      b[27],
			Underlying:  TrimASCII(b[28:41]),
			ClosingType: b[41],
			Tradable:    b[42],
			MPV:         b[43],
		}
	case 'H':
		return TradingAction{Header: hdr, OptionID: Uint32(b[9:]), State: b[13]}
	case 'O':
		return OptionOpen{Header: hdr, OptionID: Uint32(b[9:]), OpenState: b[13]}
	case 'a':
		return AddOrderShort{
			Header:   hdr,
			OrderRef: Uint64(b[9:]),
			Side:     b[17],
			OptionID: Uint32(b[18:]),
			Price:    Uint16(b[22:]),
			Volume:   Uint16(b[24:]),
		}
	case 'A':
		return AddOrderLong{
			Header:   hdr,
			OrderRef: Uint64(b[9:]),
			Side:     b[17],
			OptionID: Uint32(b[18:]),
			Price:    Uint32(b[22:]),
			Volume:   Uint32(b[26:]),
		}
	case 'j':
		return AddQuoteShort{
			Header:   hdr,
			BidRef:   Uint64(b[9:]),
			AskRef:   Uint64(b[17:]),
			OptionID: Uint32(b[25:]),
			BidPrice: Uint16(b[29:]),
			BidSize:  Uint16(b[31:]),
			AskPrice: Uint16(b[33:]),
			AskSize:  Uint16(b[35:]),
		}
	case 'J':
		return AddQuoteLong{
			Header:   hdr,
			BidRef:   Uint64(b[9:]),
			AskRef:   Uint64(b[17:]),
			OptionID: Uint32(b[25:]),
			BidPrice: Uint32(b[29:]),
			BidSize:  Uint32(b[33:]),
			AskPrice: Uint32(b[37:]),
			AskSize:  Uint32(b[41:]),
		}
	case 'E':
		return OrderExecuted{
			Header:      hdr,
			OrderRef:    Uint64(b[9:]),
			Contracts:   Uint32(b[17:]),
			CrossNumber: Uint32(b[21:]),
			MatchNumber: Uint32(b[25:]),
		}
	case 'C':
		return OrderExecutedPrice{
			Header:      hdr,
			OrderRef:    Uint64(b[9:]),
			CrossNumber: Uint32(b[17:]),
			MatchNumber: Uint32(b[21:]),
			Printable:   b[25],
			Price:       Uint32(b[26:]),
			Volume:      Uint32(b[30:]),
		}
	case 'X':
		return OrderCancel{Header: hdr, OrderRef: Uint64(b[9:]), Cancelled: Uint32(b[17:])}
	case 'u':
		return ReplaceShort{
			Header:      hdr,
			OrderRef:    Uint64(b[9:]),
			NewOrderRef: Uint64(b[17:]),
			Price:       Uint16(b[25:]),
			Volume:      Uint16(b[27:]),
		}
	case 'U':
		return ReplaceLong{
			Header:      hdr,
			OrderRef:    Uint64(b[9:]),
			NewOrderRef: Uint64(b[17:]),
			Price:       Uint32(b[25:]),
			Volume:      Uint32(b[29:]),
		}
	case 'D':
		return SingleSideDelete{Header: hdr, OrderRef: Uint64(b[9:])}
	case 'G':
		return SingleSideUpdate{
			Header:   hdr,
			OrderRef: Uint64(b[9:]),
			Reason:   b[17],
			Price:    Uint32(b[18:]),
			Volume:   Uint32(b[22:]),
		}
	case 'k':
		return QuoteReplaceShort{
			Header:    hdr,
			BidRef:    Uint64(b[9:]),
			NewBidRef: Uint64(b[17:]),
			AskRef:    Uint64(b[25:]),
			NewAskRef: Uint64(b[33:]),
			BidPrice:  Uint16(b[41:]),
			BidSize:   Uint16(b[43:]),
			AskPrice:  Uint16(b[45:]),
			AskSize:   Uint16(b[47:]),
		}
	case 'K':
		return QuoteReplaceLong{
			Header:    hdr,
			BidRef:    Uint64(b[9:]),
			NewBidRef: Uint64(b[17:]),
			AskRef:    Uint64(b[25:]),
			NewAskRef: Uint64(b[33:]),
			BidPrice:  Uint32(b[41:]),
			BidSize:   Uint32(b[45:]),
			AskPrice:  Uint32(b[49:]),
			AskSize:   Uint32(b[53:]),
		}
	case 'Y':
		return QuoteDelete{Header: hdr, BidRef: Uint64(b[9:]), AskRef: Uint64(b[17:])}
	case 'Q':
		return CrossTrade{
			Header:      hdr,
			OptionID:    Uint32(b[9:]),
			CrossNumber: Uint32(b[13:]),
			MatchNumber: Uint32(b[17:]),
			CrossType:   b[21],
			Price:       Uint32(b[22:]),
			Volume:      Uint32(b[26:]),
		}
	case 'I':
		return NOII{
			Header:             hdr,
			AuctionID:          Uint32(b[9:]),
			AuctionType:        b[13],
			PairedContracts:    Uint32(b[14:]),
			ImbalanceDirection: b[18],
			OptionID:           Uint32(b[19:]),
			ImbalancePrice:     Uint32(b[23:]),
			ImbalanceVolume:    Uint32(b[27:]),
			Reserved:           TrimASCII(b[31:35]),
		}
	}
	return nil
}
