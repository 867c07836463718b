package itto

// Plausibility bounds for volume/contract fields. The window is a
// heuristic for "looks like market data", not a protocol rule; the
// scanner uses it to reject false-positive tag matches.
const (
	minPlausibleSize = 0         // exclusive
	maxPlausibleSize = 100000000 // exclusive
)

// Plausible reports whether the candidate bytes look like a genuine
// message of the given layout. Textual fields must be printable ASCII
// (space through tilde) and size-flagged fields must fall inside the
// plausibility window. b must hold at least l.Length bytes.
func Plausible(l *Layout, b []byte) bool {
	for i := range l.Fields {
		f := &l.Fields[i]
		switch f.Kind {
		case KindChar, KindAlpha:
			for _, c := range b[f.Off : f.Off+f.Width] {
				if c < 0x20 || c > 0x7E {
					return false
				}
			}
		case KindU16:
			if f.Size {
				v := Uint16(b[f.Off:])
				if v == minPlausibleSize {
					return false
				}
			}
		case KindU32:
			if f.Size {
				v := Uint32(b[f.Off:])
				if v <= minPlausibleSize || v >= maxPlausibleSize {
					return false
				}
			}
		}
	}
	return true
}
