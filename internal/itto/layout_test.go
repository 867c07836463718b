package itto

import "testing"

// Wire lengths are load-bearing: these must match the upstream feed
// format bit for bit.
var wantLengths = map[byte]int{
	'S': 10, 'R': 44, 'H': 14, 'O': 14,
	'a': 26, 'A': 30, 'j': 37, 'J': 45,
	'E': 29, 'C': 34, 'X': 21, 'u': 29, 'U': 33,
	'D': 17, 'G': 26, 'k': 49, 'K': 57,
	'Y': 25, 'Q': 30, 'I': 35,
}

func TestLayoutLengths(t *testing.T) {
	for tag, want := range wantLengths {
		l := LayoutFor(tag)
		if l == nil {
			t.Errorf("LayoutFor(%q) = nil, want layout", tag)
			continue
		}
		if l.Length != want {
			t.Errorf("LayoutFor(%q).Length = %d, want %d", tag, l.Length, want)
		}
		if l.Tag != tag {
			t.Errorf("LayoutFor(%q).Tag = %q", tag, l.Tag)
		}
	}
	if len(Tags()) != len(wantLengths) {
		t.Errorf("Tags() has %d entries, want %d", len(Tags()), len(wantLengths))
	}
}

func TestLayoutFieldsStayInBounds(t *testing.T) {
	for _, tag := range Tags() {
		l := LayoutFor(tag)
		for _, f := range l.Fields {
			if f.Off < 1 || f.Off+f.Width > l.Length {
				t.Errorf("%q field %s: [%d,%d) outside message of %d bytes",
					tag, f.Name, f.Off, f.Off+f.Width, l.Length)
			}
			if f.Kind != KindAlpha && f.Width != f.Kind.Width() {
				t.Errorf("%q field %s: width %d does not match kind", tag, f.Name, f.Width)
			}
		}
	}
}

func TestUnknownTag(t *testing.T) {
	for _, tag := range []byte{0x00, 'Z', 'b', 0xFF, ' '} {
		if LayoutFor(tag) != nil {
			t.Errorf("LayoutFor(%#x) != nil for unknown tag", tag)
		}
		if Recognized(tag) {
			t.Errorf("Recognized(%#x) = true for unknown tag", tag)
		}
	}
}

func TestMaxLength(t *testing.T) {
	if MaxLength != 57 {
		t.Errorf("MaxLength = %d, want 57 (quote replace long)", MaxLength)
	}
}
