package itto

// Header carries the fields common to every message kind.
type Header struct {
	Tracking  uint16 // tracking number
	Timestamp uint64 // 48-bit nanoseconds since midnight, widened
}

// Message is the closed set of decoded feed messages. Each kind also
// implements apply, so a new kind cannot be added without extending
// Handler.
type Message interface {
	// Tag returns the one-byte wire tag of this message kind.
	Tag() byte
	// Hdr returns the common header fields.
	Hdr() Header

	apply(h Handler)
}

// SystemEvent is the 'S' message.
type SystemEvent struct {
	Header
	EventCode byte
}

// OptionDirectory is the 'R' message describing one listed option.
type OptionDirectory struct {
	Header
	OptionID    uint32
	Symbol      string
	ExpYear     uint8
	ExpMonth    uint8
	ExpDay      uint8
	StrikePrice uint32
	OptionType  byte
	Source      uint8
	Underlying  string
	ClosingType byte
	Tradable    byte
	MPV         byte
}

// TradingAction is the 'H' message.
type TradingAction struct {
	Header
	OptionID uint32
	State    byte
}

// OptionOpen is the 'O' message.
type OptionOpen struct {
	Header
	OptionID  uint32
	OpenState byte
}

// AddOrderShort is the 'a' message.
type AddOrderShort struct {
	Header
	OrderRef uint64
	Side     byte
	OptionID uint32
	Price    uint16
	Volume   uint16
}

// AddOrderLong is the 'A' message.
type AddOrderLong struct {
	Header
	OrderRef uint64
	Side     byte
	OptionID uint32
	Price    uint32
	Volume   uint32
}

// AddQuoteShort is the 'j' message.
type AddQuoteShort struct {
	Header
	BidRef   uint64
	AskRef   uint64
	OptionID uint32
	BidPrice uint16
	BidSize  uint16
	AskPrice uint16
	AskSize  uint16
}

// AddQuoteLong is the 'J' message.
type AddQuoteLong struct {
	Header
	BidRef   uint64
	AskRef   uint64
	OptionID uint32
	BidPrice uint32
	BidSize  uint32
	AskPrice uint32
	AskSize  uint32
}

// OrderExecuted is the 'E' message.
type OrderExecuted struct {
	Header
	OrderRef    uint64
	Contracts   uint32
	CrossNumber uint32
	MatchNumber uint32
}

// OrderExecutedPrice is the 'C' message (executed with price).
type OrderExecutedPrice struct {
	Header
	OrderRef    uint64
	CrossNumber uint32
	MatchNumber uint32
	Printable   byte
	Price       uint32
	Volume      uint32
}

// OrderCancel is the 'X' message.
type OrderCancel struct {
	Header
	OrderRef  uint64
	Cancelled uint32
}

// ReplaceShort is the 'u' message.
type ReplaceShort struct {
	Header
	OrderRef    uint64
	NewOrderRef uint64
	Price       uint16
	Volume      uint16
}

// ReplaceLong is the 'U' message.
type ReplaceLong struct {
	Header
	OrderRef    uint64
	NewOrderRef uint64
	Price       uint32
	Volume      uint32
}

// SingleSideDelete is the 'D' message.
type SingleSideDelete struct {
	Header
	OrderRef uint64
}

// SingleSideUpdate is the 'G' message.
type SingleSideUpdate struct {
	Header
	OrderRef uint64
	Reason   byte
	Price    uint32
	Volume   uint32
}

// QuoteReplaceShort is the 'k' message.
type QuoteReplaceShort struct {
	Header
	BidRef    uint64
	NewBidRef uint64
	AskRef    uint64
	NewAskRef uint64
	BidPrice  uint16
	BidSize   uint16
	AskPrice  uint16
	AskSize   uint16
}

// QuoteReplaceLong is the 'K' message.
type QuoteReplaceLong struct {
	Header
	BidRef    uint64
	NewBidRef uint64
	AskRef    uint64
	NewAskRef uint64
	BidPrice  uint32
	BidSize   uint32
	AskPrice  uint32
	AskSize   uint32
}

// QuoteDelete is the 'Y' message.
type QuoteDelete struct {
	Header
	BidRef uint64
	AskRef uint64
}

// CrossTrade is the 'Q' message.
type CrossTrade struct {
	Header
	OptionID    uint32
	CrossNumber uint32
	MatchNumber uint32
	CrossType   byte
	Price       uint32
	Volume      uint32
}

// NOII is the 'I' net order imbalance indicator message.
type NOII struct {
	Header
	AuctionID          uint32
	AuctionType        byte
	PairedContracts    uint32
	ImbalanceDirection byte
	OptionID           uint32
	ImbalancePrice     uint32
	ImbalanceVolume    uint32
	Reserved           string
}

func (h Header) Hdr() Header { return h }

func (SystemEvent) Tag() byte        { return 'S' }
func (OptionDirectory) Tag() byte    { return 'R' }
func (TradingAction) Tag() byte      { return 'H' }
func (OptionOpen) Tag() byte         { return 'O' }
func (AddOrderShort) Tag() byte      { return 'a' }
func (AddOrderLong) Tag() byte       { return 'A' }
func (AddQuoteShort) Tag() byte      { return 'j' }
func (AddQuoteLong) Tag() byte       { return 'J' }
func (OrderExecuted) Tag() byte      { return 'E' }
func (OrderExecutedPrice) Tag() byte { return 'C' }
func (OrderCancel) Tag() byte        { return 'X' }
func (ReplaceShort) Tag() byte       { return 'u' }
func (ReplaceLong) Tag() byte        { return 'U' }
func (SingleSideDelete) Tag() byte   { return 'D' }
func (SingleSideUpdate) Tag() byte   { return 'G' }
func (QuoteReplaceShort) Tag() byte  { return 'k' }
func (QuoteReplaceLong) Tag() byte   { return 'K' }
func (QuoteDelete) Tag() byte        { return 'Y' }
func (CrossTrade) Tag() byte         { return 'Q' }
func (NOII) Tag() byte               { return 'I' }
