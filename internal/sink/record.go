package sink

import (
	"github.com/rickgao/itto-feed/internal/itto"
)

// Record is the normalized, kind-independent view of a feed message.
// Fields a kind does not carry stay zero. Long and short variants of
// the same operation normalize to the same shape.
type Record struct {
	Type      string
	Tag       byte
	Tracking  uint16
	Timestamp uint64 // nanoseconds since midnight

	OptionID uint32
	Symbol   string
	Side     byte
	Code     byte // event code, trading state, reason, cross type

	Price  uint32
	Volume uint32

	// Opposite side of two-sided quotes.
	AuxPrice  uint32
	AuxVolume uint32

	Ref       uint64
	NewRef    uint64
	AuxRef    uint64
	NewAuxRef uint64

	CrossNumber uint32
	MatchNumber uint32
}

// Normalize flattens a decoded message into a Record.
func Normalize(m itto.Message) Record {
	r := recorder{rec: Record{
		Tag:       m.Tag(),
		Tracking:  m.Hdr().Tracking,
		Timestamp: m.Hdr().Timestamp,
	}}
	itto.Dispatch(m, &r)
	return r.rec
}

// recorder implements itto.Handler so that adding a message kind
// forces a normalization rule here.
type recorder struct {
	rec Record
}

func (r *recorder) OnSystemEvent(m itto.SystemEvent) {
	r.rec.Type = "system_event"
	r.rec.Code = m.EventCode
}

func (r *recorder) OnOptionDirectory(m itto.OptionDirectory) {
	r.rec.Type = "option_directory"
	r.rec.OptionID = m.OptionID
	r.rec.Symbol = m.Symbol
	r.rec.Price = m.StrikePrice
	r.rec.Code = m.OptionType
}

func (r *recorder) OnTradingAction(m itto.TradingAction) {
	r.rec.Type = "trading_action"
	r.rec.OptionID = m.OptionID
	r.rec.Code = m.State
}

func (r *recorder) OnOptionOpen(m itto.OptionOpen) {
	r.rec.Type = "option_open"
	r.rec.OptionID = m.OptionID
	r.rec.Code = m.OpenState
}

func (r *recorder) OnAddOrderShort(m itto.AddOrderShort) {
	r.rec.Type = "add_order"
	r.rec.Ref = m.OrderRef
	r.rec.Side = m.Side
	r.rec.OptionID = m.OptionID
	r.rec.Price = uint32(m.Price)
	r.rec.Volume = uint32(m.Volume)
}

func (r *recorder) OnAddOrderLong(m itto.AddOrderLong) {
	r.rec.Type = "add_order"
	r.rec.Ref = m.OrderRef
	r.rec.Side = m.Side
	r.rec.OptionID = m.OptionID
	r.rec.Price = m.Price
	r.rec.Volume = m.Volume
}

func (r *recorder) OnAddQuoteShort(m itto.AddQuoteShort) {
	r.rec.Type = "add_quote"
	r.rec.Ref = m.BidRef
	r.rec.AuxRef = m.AskRef
	r.rec.OptionID = m.OptionID
	r.rec.Price = uint32(m.BidPrice)
	r.rec.Volume = uint32(m.BidSize)
	r.rec.AuxPrice = uint32(m.AskPrice)
	r.rec.AuxVolume = uint32(m.AskSize)
}

func (r *recorder) OnAddQuoteLong(m itto.AddQuoteLong) {
	r.rec.Type = "add_quote"
	r.rec.Ref = m.BidRef
	r.rec.AuxRef = m.AskRef
	r.rec.OptionID = m.OptionID
	r.rec.Price = m.BidPrice
	r.rec.Volume = m.BidSize
	r.rec.AuxPrice = m.AskPrice
	r.rec.AuxVolume = m.AskSize
}

func (r *recorder) OnOrderExecuted(m itto.OrderExecuted) {
	r.rec.Type = "order_executed"
	r.rec.Ref = m.OrderRef
	r.rec.Volume = m.Contracts
	r.rec.CrossNumber = m.CrossNumber
	r.rec.MatchNumber = m.MatchNumber
}

func (r *recorder) OnOrderExecutedPrice(m itto.OrderExecutedPrice) {
	r.rec.Type = "order_executed_price"
	r.rec.Ref = m.OrderRef
	r.rec.CrossNumber = m.CrossNumber
	r.rec.MatchNumber = m.MatchNumber
	r.rec.Code = m.Printable
	r.rec.Price = m.Price
	r.rec.Volume = m.Volume
}

func (r *recorder) OnOrderCancel(m itto.OrderCancel) {
	r.rec.Type = "order_cancel"
	r.rec.Ref = m.OrderRef
	r.rec.Volume = m.Cancelled
}

func (r *recorder) OnReplaceShort(m itto.ReplaceShort) {
	r.rec.Type = "replace"
	r.rec.Ref = m.OrderRef
	r.rec.NewRef = m.NewOrderRef
	r.rec.Price = uint32(m.Price)
	r.rec.Volume = uint32(m.Volume)
}

func (r *recorder) OnReplaceLong(m itto.ReplaceLong) {
	r.rec.Type = "replace"
	r.rec.Ref = m.OrderRef
	r.rec.NewRef = m.NewOrderRef
	r.rec.Price = m.Price
	r.rec.Volume = m.Volume
}

func (r *recorder) OnSingleSideDelete(m itto.SingleSideDelete) {
	r.rec.Type = "single_side_delete"
	r.rec.Ref = m.OrderRef
}

func (r *recorder) OnSingleSideUpdate(m itto.SingleSideUpdate) {
	r.rec.Type = "single_side_update"
	r.rec.Ref = m.OrderRef
	r.rec.Code = m.Reason
	r.rec.Price = m.Price
	r.rec.Volume = m.Volume
}

func (r *recorder) OnQuoteReplaceShort(m itto.QuoteReplaceShort) {
	r.rec.Type = "quote_replace"
	r.rec.Ref = m.BidRef
	r.rec.NewRef = m.NewBidRef
	r.rec.AuxRef = m.AskRef
	r.rec.NewAuxRef = m.NewAskRef
	r.rec.Price = uint32(m.BidPrice)
	r.rec.Volume = uint32(m.BidSize)
	r.rec.AuxPrice = uint32(m.AskPrice)
	r.rec.AuxVolume = uint32(m.AskSize)
}

func (r *recorder) OnQuoteReplaceLong(m itto.QuoteReplaceLong) {
	r.rec.Type = "quote_replace"
	r.rec.Ref = m.BidRef
	r.rec.NewRef = m.NewBidRef
	r.rec.AuxRef = m.AskRef
	r.rec.NewAuxRef = m.NewAskRef
	r.rec.Price = m.BidPrice
	r.rec.Volume = m.BidSize
	r.rec.AuxPrice = m.AskPrice
	r.rec.AuxVolume = m.AskSize
}

func (r *recorder) OnQuoteDelete(m itto.QuoteDelete) {
	r.rec.Type = "quote_delete"
	r.rec.Ref = m.BidRef
	r.rec.AuxRef = m.AskRef
}

func (r *recorder) OnCrossTrade(m itto.CrossTrade) {
	r.rec.Type = "cross_trade"
	r.rec.OptionID = m.OptionID
	r.rec.CrossNumber = m.CrossNumber
	r.rec.MatchNumber = m.MatchNumber
	r.rec.Code = m.CrossType
	r.rec.Price = m.Price
	r.rec.Volume = m.Volume
}

func (r *recorder) OnNOII(m itto.NOII) {
	r.rec.Type = "noii"
	r.rec.Ref = uint64(m.AuctionID)
	r.rec.Code = m.AuctionType
	r.rec.Side = m.ImbalanceDirection
	r.rec.OptionID = m.OptionID
	r.rec.Price = m.ImbalancePrice
	r.rec.Volume = m.ImbalanceVolume
	r.rec.AuxVolume = m.PairedContracts
}
