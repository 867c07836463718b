package itto

// Handler receives decoded messages, one method per kind. Adding a
// message kind extends this interface, so every consumer breaks at
// compile time until it handles the new kind.
type Handler interface {
	OnSystemEvent(m SystemEvent)
	OnOptionDirectory(m OptionDirectory)
	OnTradingAction(m TradingAction)
	OnOptionOpen(m OptionOpen)
	OnAddOrderShort(m AddOrderShort)
	OnAddOrderLong(m AddOrderLong)
	OnAddQuoteShort(m AddQuoteShort)
	OnAddQuoteLong(m AddQuoteLong)
	OnOrderExecuted(m OrderExecuted)
	OnOrderExecutedPrice(m OrderExecutedPrice)
	OnOrderCancel(m OrderCancel)
	OnReplaceShort(m ReplaceShort)
	OnReplaceLong(m ReplaceLong)
	OnSingleSideDelete(m SingleSideDelete)
	OnSingleSideUpdate(m SingleSideUpdate)
	OnQuoteReplaceShort(m QuoteReplaceShort)
	OnQuoteReplaceLong(m QuoteReplaceLong)
	OnQuoteDelete(m QuoteDelete)
	OnCrossTrade(m CrossTrade)
	OnNOII(m NOII)
}

// Dispatch routes one decoded message to its Handler method. Messages
// arrive in stream order; the call is synchronous on the caller's
// goroutine.
func Dispatch(m Message, h Handler) {
	m.apply(h)
}

func (m SystemEvent) apply(h Handler)        { h.OnSystemEvent(m) }
func (m OptionDirectory) apply(h Handler)    { h.OnOptionDirectory(m) }
func (m TradingAction) apply(h Handler)      { h.OnTradingAction(m) }
func (m OptionOpen) apply(h Handler)         { h.OnOptionOpen(m) }
func (m AddOrderShort) apply(h Handler)      { h.OnAddOrderShort(m) }
func (m AddOrderLong) apply(h Handler)       { h.OnAddOrderLong(m) }
func (m AddQuoteShort) apply(h Handler)      { h.OnAddQuoteShort(m) }
func (m AddQuoteLong) apply(h Handler)       { h.OnAddQuoteLong(m) }
func (m OrderExecuted) apply(h Handler)      { h.OnOrderExecuted(m) }
func (m OrderExecutedPrice) apply(h Handler) { h.OnOrderExecutedPrice(m) }
func (m OrderCancel) apply(h Handler)        { h.OnOrderCancel(m) }
func (m ReplaceShort) apply(h Handler)       { h.OnReplaceShort(m) }
func (m ReplaceLong) apply(h Handler)        { h.OnReplaceLong(m) }
func (m SingleSideDelete) apply(h Handler)   { h.OnSingleSideDelete(m) }
func (m SingleSideUpdate) apply(h Handler)   { h.OnSingleSideUpdate(m) }
func (m QuoteReplaceShort) apply(h Handler)  { h.OnQuoteReplaceShort(m) }
func (m QuoteReplaceLong) apply(h Handler)   { h.OnQuoteReplaceLong(m) }
func (m QuoteDelete) apply(h Handler)        { h.OnQuoteDelete(m) }
func (m CrossTrade) apply(h Handler)         { h.OnCrossTrade(m) }
func (m NOII) apply(h Handler)               { h.OnNOII(m) }

// MessageFunc adapts a plain callback to Handler for consumers that
// treat every kind uniformly.
type MessageFunc func(m Message)

func (f MessageFunc) OnSystemEvent(m SystemEvent)               { f(m) }
func (f MessageFunc) OnOptionDirectory(m OptionDirectory)       { f(m) }
func (f MessageFunc) OnTradingAction(m TradingAction)           { f(m) }
func (f MessageFunc) OnOptionOpen(m OptionOpen)                 { f(m) }
func (f MessageFunc) OnAddOrderShort(m AddOrderShort)           { f(m) }
func (f MessageFunc) OnAddOrderLong(m AddOrderLong)             { f(m) }
func (f MessageFunc) OnAddQuoteShort(m AddQuoteShort)           { f(m) }
func (f MessageFunc) OnAddQuoteLong(m AddQuoteLong)             { f(m) }
func (f MessageFunc) OnOrderExecuted(m OrderExecuted)           { f(m) }
func (f MessageFunc) OnOrderExecutedPrice(m OrderExecutedPrice) { f(m) }
func (f MessageFunc) OnOrderCancel(m OrderCancel)               { f(m) }
func (f MessageFunc) OnReplaceShort(m ReplaceShort)             { f(m) }
func (f MessageFunc) OnReplaceLong(m ReplaceLong)               { f(m) }
func (f MessageFunc) OnSingleSideDelete(m SingleSideDelete)     { f(m) }
func (f MessageFunc) OnSingleSideUpdate(m SingleSideUpdate)     { f(m) }
func (f MessageFunc) OnQuoteReplaceShort(m QuoteReplaceShort)   { f(m) }
func (f MessageFunc) OnQuoteReplaceLong(m QuoteReplaceLong)     { f(m) }
func (f MessageFunc) OnQuoteDelete(m QuoteDelete)               { f(m) }
func (f MessageFunc) OnCrossTrade(m CrossTrade)                 { f(m) }
func (f MessageFunc) OnNOII(m NOII)                             { f(m) }
