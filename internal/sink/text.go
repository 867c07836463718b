package sink

import (
	"fmt"
	"io"

	"github.com/rickgao/itto-feed/internal/itto"
)

// TextSink renders each message kind as a human-readable line. It
// implements itto.Handler so it plugs directly into a framer.
type TextSink struct {
	w   io.Writer
	err error
}

// NewTextSink returns a sink writing one line per message to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// Err reports the first write error, if any.
func (s *TextSink) Err() error { return s.err }

func (s *TextSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.err = err
	}
}

func (s *TextSink) OnSystemEvent(m itto.SystemEvent) {
	s.printf("%s S event=%c\n", FormatTimestamp(m.Timestamp), m.EventCode)
}

func (s *TextSink) OnOptionDirectory(m itto.OptionDirectory) {
	s.printf("%s R option=%d symbol=%s exp=20%02d-%02d-%02d strike=%s type=%c underlying=%s closing=%c tradable=%c mpv=%c\n",
		FormatTimestamp(m.Timestamp), m.OptionID, m.Symbol,
		m.ExpYear, m.ExpMonth, m.ExpDay,
		FormatPrice(m.StrikePrice), m.OptionType, m.Underlying,
		m.ClosingType, m.Tradable, m.MPV)
}

func (s *TextSink) OnTradingAction(m itto.TradingAction) {
	s.printf("%s H option=%d state=%c\n", FormatTimestamp(m.Timestamp), m.OptionID, m.State)
}

func (s *TextSink) OnOptionOpen(m itto.OptionOpen) {
	s.printf("%s O option=%d open=%c\n", FormatTimestamp(m.Timestamp), m.OptionID, m.OpenState)
}

func (s *TextSink) OnAddOrderShort(m itto.AddOrderShort) {
	s.printf("%s a ref=%d side=%c option=%d price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.OrderRef, m.Side, m.OptionID,
		FormatPrice(uint32(m.Price)), m.Volume)
}

func (s *TextSink) OnAddOrderLong(m itto.AddOrderLong) {
	s.printf("%s A ref=%d side=%c option=%d price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.OrderRef, m.Side, m.OptionID,
		FormatPrice(m.Price), m.Volume)
}

func (s *TextSink) OnAddQuoteShort(m itto.AddQuoteShort) {
	s.printf("%s j bid_ref=%d ask_ref=%d option=%d bid=%sx%d ask=%sx%d\n",
		FormatTimestamp(m.Timestamp), m.BidRef, m.AskRef, m.OptionID,
		FormatPrice(uint32(m.BidPrice)), m.BidSize,
		FormatPrice(uint32(m.AskPrice)), m.AskSize)
}

func (s *TextSink) OnAddQuoteLong(m itto.AddQuoteLong) {
	s.printf("%s J bid_ref=%d ask_ref=%d option=%d bid=%sx%d ask=%sx%d\n",
		FormatTimestamp(m.Timestamp), m.BidRef, m.AskRef, m.OptionID,
		FormatPrice(m.BidPrice), m.BidSize,
		FormatPrice(m.AskPrice), m.AskSize)
}

func (s *TextSink) OnOrderExecuted(m itto.OrderExecuted) {
	s.printf("%s E ref=%d contracts=%d cross=%d match=%d\n",
		FormatTimestamp(m.Timestamp), m.OrderRef, m.Contracts, m.CrossNumber, m.MatchNumber)
}

func (s *TextSink) OnOrderExecutedPrice(m itto.OrderExecutedPrice) {
	s.printf("%s C ref=%d cross=%d match=%d printable=%c price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.OrderRef, m.CrossNumber, m.MatchNumber,
		m.Printable, FormatPrice(m.Price), m.Volume)
}

func (s *TextSink) OnOrderCancel(m itto.OrderCancel) {
	s.printf("%s X ref=%d cancelled=%d\n", FormatTimestamp(m.Timestamp), m.OrderRef, m.Cancelled)
}

func (s *TextSink) OnReplaceShort(m itto.ReplaceShort) {
	s.printf("%s u ref=%d new_ref=%d price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.OrderRef, m.NewOrderRef,
		FormatPrice(uint32(m.Price)), m.Volume)
}

func (s *TextSink) OnReplaceLong(m itto.ReplaceLong) {
	s.printf("%s U ref=%d new_ref=%d price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.OrderRef, m.NewOrderRef,
		FormatPrice(m.Price), m.Volume)
}

func (s *TextSink) OnSingleSideDelete(m itto.SingleSideDelete) {
	s.printf("%s D ref=%d\n", FormatTimestamp(m.Timestamp), m.OrderRef)
}

func (s *TextSink) OnSingleSideUpdate(m itto.SingleSideUpdate) {
	s.printf("%s G ref=%d reason=%c price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.OrderRef, m.Reason,
		FormatPrice(m.Price), m.Volume)
}

func (s *TextSink) OnQuoteReplaceShort(m itto.QuoteReplaceShort) {
	s.printf("%s k bid_ref=%d new_bid_ref=%d ask_ref=%d new_ask_ref=%d bid=%sx%d ask=%sx%d\n",
		FormatTimestamp(m.Timestamp), m.BidRef, m.NewBidRef, m.AskRef, m.NewAskRef,
		FormatPrice(uint32(m.BidPrice)), m.BidSize,
		FormatPrice(uint32(m.AskPrice)), m.AskSize)
}

func (s *TextSink) OnQuoteReplaceLong(m itto.QuoteReplaceLong) {
	s.printf("%s K bid_ref=%d new_bid_ref=%d ask_ref=%d new_ask_ref=%d bid=%sx%d ask=%sx%d\n",
		FormatTimestamp(m.Timestamp), m.BidRef, m.NewBidRef, m.AskRef, m.NewAskRef,
		FormatPrice(m.BidPrice), m.BidSize,
		FormatPrice(m.AskPrice), m.AskSize)
}

func (s *TextSink) OnQuoteDelete(m itto.QuoteDelete) {
	s.printf("%s Y bid_ref=%d ask_ref=%d\n", FormatTimestamp(m.Timestamp), m.BidRef, m.AskRef)
}

func (s *TextSink) OnCrossTrade(m itto.CrossTrade) {
	s.printf("%s Q option=%d cross=%d match=%d type=%c price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.OptionID, m.CrossNumber, m.MatchNumber,
		m.CrossType, FormatPrice(m.Price), m.Volume)
}

func (s *TextSink) OnNOII(m itto.NOII) {
	s.printf("%s I auction=%d type=%c paired=%d dir=%c option=%d price=%s vol=%d\n",
		FormatTimestamp(m.Timestamp), m.AuctionID, m.AuctionType, m.PairedContracts,
		m.ImbalanceDirection, m.OptionID, FormatPrice(m.ImbalancePrice), m.ImbalanceVolume)
}
