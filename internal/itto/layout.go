package itto

// FieldKind is the decode kind of one layout field.
type FieldKind int

const (
	// KindU8 is a one-byte unsigned integer.
	KindU8 FieldKind = iota
	// KindU16 is a big-endian 16-bit unsigned integer.
	KindU16
	// KindU32 is a big-endian 32-bit unsigned integer.
	KindU32
	// KindU48 is a big-endian 48-bit unsigned integer widened to 64 bits.
	KindU48
	// KindU64 is a big-endian 64-bit unsigned integer.
	KindU64
	// KindChar is a single ASCII byte.
	KindChar
	// KindAlpha is a space-padded ASCII field.
	KindAlpha
)

// Width returns the byte width of fixed-width kinds, or 0 for KindAlpha
// whose width is per-field.
func (k FieldKind) Width() int {
	switch k {
	case KindU8, KindChar:
		return 1
	case KindU16:
		return 2
	case KindU32:
		return 4
	case KindU48:
		return 6
	case KindU64:
		return 8
	default:
		return 0
	}
}

// Field is one fixed-offset field of a message layout.
type Field struct {
	Name  string
	Off   int
	Width int
	Kind  FieldKind

	// Size marks volume/contract-count fields subject to the
	// (0, 100_000_000) plausibility window during scanning.
	Size bool
}

// Layout is the compiled-in wire layout for one message tag.
type Layout struct {
	Tag    byte
	Name   string
	Length int // total bytes, tag included
	Fields []Field
}

// Header fields common to every tag: the tag byte at 0, a 16-bit
// tracking number at 1 and a 48-bit timestamp at 3. Bodies start at 9.
const (
	headerLen   = 9
	offTracking = 1
	offTime     = 3
)

func u16(name string, off int) Field  { return Field{Name: name, Off: off, Width: 2, Kind: KindU16} }
func u32(name string, off int) Field  { return Field{Name: name, Off: off, Width: 4, Kind: KindU32} }
func u64f(name string, off int) Field { return Field{Name: name, Off: off, Width: 8, Kind: KindU64} }
func u8(name string, off int) Field   { return Field{Name: name, Off: off, Width: 1, Kind: KindU8} }
func ch(name string, off int) Field   { return Field{Name: name, Off: off, Width: 1, Kind: KindChar} }
func alpha(name string, off, w int) Field {
	return Field{Name: name, Off: off, Width: w, Kind: KindAlpha}
}
func size16(name string, off int) Field {
	return Field{Name: name, Off: off, Width: 2, Kind: KindU16, Size: true}
}
func size32(name string, off int) Field {
	return Field{Name: name, Off: off, Width: 4, Kind: KindU32, Size: true}
}

func header() []Field {
	return []Field{
		u16("tracking", offTracking),
		{Name: "timestamp", Off: offTime, Width: 6, Kind: KindU48},
	}
}

func layout(tag byte, name string, length int, body ...Field) Layout {
	return Layout{Tag: tag, Name: name, Length: length, Fields: append(header(), body...)}
}

// layouts enumerates every recognized tag. Lengths and offsets are the
// bit-exact contract with the upstream feed and must not change.
var layouts = [...]Layout{
	layout('S', "system_event", 10,
		ch("event_code", 9)),
	layout('R', "option_directory", 44,
		u32("option_id", 9),
		alpha("symbol", 13, 6),
		u8("exp_year", 19), u8("exp_month", 20), u8("exp_day", 21),
		u32("strike_price", 22),
		ch("option_type", 26),
		u8("source", 27),
		alpha("underlying", 28, 13),
		ch("closing_type", 41), ch("tradable", 42), ch("mpv", 43)),
	layout('H', "trading_action", 14,
		u32("option_id", 9),
		ch("trading_state", 13)),
	layout('O', "option_open", 14,
		u32("option_id", 9),
		ch("open_state", 13)),
	layout('a', "add_order_short", 26,
		u64f("order_ref", 9),
		ch("side", 17),
		u32("option_id", 18),
		u16("price", 22),
		size16("volume", 24)),
	layout('A', "add_order_long", 30,
		u64f("order_ref", 9),
		ch("side", 17),
		u32("option_id", 18),
		u32("price", 22),
		size32("volume", 26)),
	layout('j', "add_quote_short", 37,
		u64f("bid_ref", 9),
		u64f("ask_ref", 17),
		u32("option_id", 25),
		u16("bid_price", 29), size16("bid_size", 31),
		u16("ask_price", 33), size16("ask_size", 35)),
	layout('J', "add_quote_long", 45,
		u64f("bid_ref", 9),
		u64f("ask_ref", 17),
		u32("option_id", 25),
		u32("bid_price", 29), size32("bid_size", 33),
		u32("ask_price", 37), size32("ask_size", 41)),
	layout('E', "order_executed", 29,
		u64f("order_ref", 9),
		size32("contracts", 17),
		u32("cross_number", 21),
		u32("match_number", 25)),
	layout('C', "order_executed_price", 34,
		u64f("order_ref", 9),
		u32("cross_number", 17),
		u32("match_number", 21),
		ch("printable", 25),
		u32("price", 26),
		size32("volume", 30)),
	layout('X', "order_cancel", 21,
		u64f("order_ref", 9),
		size32("cancelled", 17)),
	layout('u', "replace_short", 29,
		u64f("order_ref", 9),
		u64f("new_order_ref", 17),
		u16("price", 25),
		size16("volume", 27)),
	layout('U', "replace_long", 33,
		u64f("order_ref", 9),
		u64f("new_order_ref", 17),
		u32("price", 25),
		size32("volume", 29)),
	layout('D', "single_side_delete", 17,
		u64f("order_ref", 9)),
	layout('G', "single_side_update", 26,
		u64f("order_ref", 9),
		ch("reason", 17),
		u32("price", 18),
		size32("volume", 22)),
	// Quote replace sizes are allowed to be zero on the wire (a side
	// being replaced away), so they carry no plausibility window.
	layout('k', "quote_replace_short", 49,
		u64f("bid_ref", 9),
		u64f("new_bid_ref", 17),
		u64f("ask_ref", 25),
		u64f("new_ask_ref", 33),
		u16("bid_price", 41), u16("bid_size", 43),
		u16("ask_price", 45), u16("ask_size", 47)),
	layout('K', "quote_replace_long", 57,
		u64f("bid_ref", 9),
		u64f("new_bid_ref", 17),
		u64f("ask_ref", 25),
		u64f("new_ask_ref", 33),
		u32("bid_price", 41), u32("bid_size", 45),
		u32("ask_price", 49), u32("ask_size", 53)),
	layout('Y', "quote_delete", 25,
		u64f("bid_ref", 9),
		u64f("ask_ref", 17)),
	layout('Q', "cross_trade", 30,
		u32("option_id", 9),
		u32("cross_number", 13),
		u32("match_number", 17),
		ch("cross_type", 21),
		u32("price", 22),
		size32("volume", 26)),
	// NOII paired/imbalance volumes may legitimately be zero.
	layout('I', "noii", 35,
		u32("auction_id", 9),
		ch("auction_type", 13),
		u32("paired_contracts", 14),
		ch("imbalance_direction", 18),
		u32("option_id", 19),
		u32("imbalance_price", 23),
		u32("imbalance_volume", 27),
		alpha("reserved", 31, 4)),
}

// layoutByTag is indexed by tag byte for O(1) lookup; nil means the
// tag is unknown.
var layoutByTag [256]*Layout

// MaxLength is the longest recognized message length. The framer's
// leftover buffer is always strictly shorter than this.
var MaxLength int

func init() {
	for i := range layouts {
		l := &layouts[i]
		layoutByTag[l.Tag] = l
		if l.Length > MaxLength {
			MaxLength = l.Length
		}
	}
}

// LayoutFor returns the layout for tag, or nil if the tag is not a
// recognized message kind.
func LayoutFor(tag byte) *Layout {
	return layoutByTag[tag]
}

// Recognized reports whether tag names a known message kind.
func Recognized(tag byte) bool {
	return layoutByTag[tag] != nil
}

// Tags returns the set of recognized tag bytes in table order.
func Tags() []byte {
	tags := make([]byte, 0, len(layouts))
	for i := range layouts {
		tags = append(tags, layouts[i].Tag)
	}
	return tags
}
