package itto

import "testing"

func TestPlausibleAcceptsFixtures(t *testing.T) {
	for tag, raw := range fixtures {
		if !Plausible(LayoutFor(tag), raw) {
			t.Errorf("Plausible(%q fixture) = false, want true", tag)
		}
	}
}

func TestPlausibleRejectsUnprintableText(t *testing.T) {
	raw := append([]byte{}, fixtures['A']...)
	raw[17] = 0x02 // side byte, not printable
	if Plausible(LayoutFor('A'), raw) {
		t.Error("accepted add order with unprintable side byte")
	}

	raw = append([]byte{}, fixtures['R']...)
	raw[14] = 0x7F // inside symbol field
	if Plausible(LayoutFor('R'), raw) {
		t.Error("accepted directory with unprintable symbol byte")
	}
}

func TestPlausibleRejectsImplausibleSizes(t *testing.T) {
	// Zero volume.
	raw := append([]byte{}, fixtures['A']...)
	raw[26], raw[27], raw[28], raw[29] = 0, 0, 0, 0
	if Plausible(LayoutFor('A'), raw) {
		t.Error("accepted add order with zero volume")
	}

	// Volume at or above 100 million.
	raw = append([]byte{}, fixtures['A']...)
	raw[26], raw[27], raw[28], raw[29] = 0x05, 0xF5, 0xE1, 0x00
	if Plausible(LayoutFor('A'), raw) {
		t.Error("accepted add order with 100M volume")
	}

	raw = append([]byte{}, fixtures['X']...)
	raw[17], raw[18], raw[19], raw[20] = 0, 0, 0, 0
	if Plausible(LayoutFor('X'), raw) {
		t.Error("accepted cancel of zero contracts")
	}
}

func TestPlausibleAllowsZeroQuoteReplaceSizes(t *testing.T) {
	// The k fixture genuinely carries a zeroed bid side; quote replace
	// sizes are outside the plausibility window on purpose.
	if !Plausible(LayoutFor('k'), fixtures['k']) {
		t.Error("rejected quote replace with zero bid size")
	}
	if !Plausible(LayoutFor('I'), fixtures['I']) {
		t.Error("rejected NOII with zero imbalance volume")
	}
}
