package itto

// Captured wire messages, one per recognized tag, taken from a live
// feed dump. These anchor the decode tests byte for byte.
var fixtures = map[byte][]byte{
	'S': {0x53, 0x00, 0x00, 0x07, 0x3E, 0xE0, 0x35, 0xAE, 0x45, 0x4F},
	'R': {0x52, 0x00, 0x00, 0x07, 0xD7, 0x96, 0x11, 0x5F, 0x18, 0x00, 0x05, 0x3B, 0xA3,
		0x45, 0x50, 0x41, 0x4D, 0x20, 0x20, 0x17, 0x06, 0x10, 0x00, 0x21, 0x91, 0xC0,
		0x43, 0x01, 0x45, 0x50, 0x41, 0x4D, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
		0x20, 0x20, 0x4E, 0x59, 0x53},
	'H': {0x48, 0x00, 0x00, 0x07, 0xD7, 0x96, 0x1B, 0xDC, 0x7C, 0x00, 0x05, 0x3B, 0xA3, 0x54},
	'O': {0x4F, 0x00, 0x05, 0x1F, 0x1A, 0xD9, 0x82, 0xB4, 0xD4, 0x00, 0x03, 0xD5, 0x59, 0x59},
	'a': {0x61, 0x00, 0x00, 0x13, 0xF8, 0xF6, 0x49, 0x74, 0x92, 0x00, 0x00, 0x00, 0x00,
		0xB2, 0xD0, 0x5E, 0x08, 0x53, 0x00, 0x02, 0x13, 0x45, 0x00, 0x05, 0x00, 0x08},
	'A': {0x41, 0x00, 0x00, 0x1B, 0xBB, 0xD2, 0x33, 0x22, 0xBD, 0x00, 0x00, 0x00, 0x00,
		0xB2, 0xD1, 0x42, 0xF0, 0x53, 0x00, 0x00, 0x0D, 0x51, 0x00, 0x7A, 0x25, 0x88,
		0x00, 0x00, 0x00, 0x01},
	'j': {0x6A, 0x00, 0x00, 0x1E, 0xD4, 0xF5, 0x7D, 0xBD, 0xA2, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x28, 0x53, 0x68, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x28, 0x53, 0x6C, 0x00,
		0x01, 0xE3, 0xC1, 0x00, 0x78, 0x00, 0x01, 0x02, 0x6C, 0x00, 0x01},
	'J': {0x4A, 0x00, 0x00, 0x1E, 0xD5, 0x01, 0x12, 0x20, 0xA2, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x28, 0xA3, 0xE4, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x28, 0xA3, 0xE8, 0x00,
		0x00, 0xE4, 0x10, 0x00, 0x66, 0x14, 0xD0, 0x00, 0x00, 0x00, 0x05, 0x00, 0x68,
		0x62, 0xA8, 0x00, 0x00, 0x00, 0x05},
	'E': {0x45, 0x00, 0x01, 0x1F, 0x1A, 0xE4, 0x52, 0x30, 0x83, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0xA0, 0x82, 0x90, 0x00, 0x00, 0x00, 0x01, 0x00, 0x0F, 0x42, 0xC8, 0x00,
		0x4C, 0x4D, 0x08},
	'C': {0x43, 0x00, 0x01, 0x1F, 0x1A, 0xD9, 0x82, 0xB4, 0xD4, 0x00, 0x00, 0x00, 0x00,
		0xB2, 0xD1, 0x89, 0x14, 0x00, 0x0F, 0x42, 0x40, 0x00, 0x4C, 0x4B, 0x48, 0x4E,
		0x00, 0x00, 0x44, 0xC0, 0x00, 0x00, 0x00, 0x01},
	'X': {0x58, 0x00, 0x01, 0x1F, 0x1C, 0x04, 0x0B, 0x45, 0x1C, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x7B, 0x95, 0xDC, 0x00, 0x00, 0x00, 0x03},
	'u': {0x75, 0x00, 0x00, 0x1D, 0x9D, 0x32, 0x58, 0xC7, 0x32, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x05, 0x9C, 0x0C, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x05, 0xB7, 0xE0, 0x00,
		0x19, 0x00, 0x0A},
	'U': {0x55, 0x00, 0x00, 0x1E, 0xD5, 0x06, 0x50, 0xB1, 0xF6, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x28, 0xB0, 0x14, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x28, 0xD0, 0xD0, 0x00,
		0x64, 0xDE, 0x44, 0x00, 0x00, 0x00, 0x04},
	'D': {0x44, 0x00, 0x00, 0x18, 0xEB, 0xCA, 0xB3, 0x7B, 0x80, 0x00, 0x00, 0x00, 0x00,
		0xB2, 0xD0, 0x6C, 0xE8},
	'G': {0x47, 0x00, 0x00, 0x1E, 0xD5, 0x62, 0x15, 0x33, 0xF8, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x28, 0x80, 0x98, 0x55, 0x00, 0x0B, 0xEA, 0xC8, 0x00, 0x00, 0x00, 0x01},
	'k': {0x6B, 0x00, 0x00, 0x1E, 0xD5, 0x00, 0xAC, 0x76, 0xEF, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x28, 0x55, 0x0C, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x28, 0x8E, 0xB0, 0x00,
		0x00, 0x00, 0x00, 0xB3, 0x28, 0x55, 0x10, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x28,
		0x8E, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x01, 0xF4, 0x00, 0x01},
	'K': {0x4B, 0x00, 0x00, 0x1E, 0xD5, 0x62, 0x3E, 0x27, 0x8C, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x28, 0xA5, 0x24, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x29, 0xD9, 0xA4, 0x00,
		0x00, 0x00, 0x00, 0xB3, 0x28, 0xA5, 0x28, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x29,
		0xD9, 0xA8, 0x00, 0x7E, 0xB1, 0x98, 0x00, 0x00, 0x00, 0x05, 0x00, 0x81, 0x61,
		0x18, 0x00, 0x00, 0x00, 0x05},
	'Y': {0x59, 0x00, 0x00, 0x1E, 0xD4, 0xF9, 0x30, 0x08, 0x03, 0x00, 0x00, 0x00, 0x00,
		0xB3, 0x28, 0x55, 0x50, 0x00, 0x00, 0x00, 0x00, 0xB3, 0x28, 0x55, 0x54},
	'Q': {0x51, 0x00, 0x05, 0x1F, 0x1A, 0xD9, 0x82, 0xB4, 0xD4, 0x00, 0x03, 0xD5, 0x59,
		0x00, 0x0F, 0x42, 0x40, 0x00, 0x4C, 0x4B, 0x58, 0x4F, 0x00, 0x00, 0x44, 0xC0,
		0x00, 0x00, 0x00, 0x02},
	'I': {0x49, 0x00, 0x00, 0x1E, 0xD4, 0xF9, 0x6C, 0x10, 0x1C, 0x00, 0x0F, 0x42, 0x44,
		0x4F, 0x00, 0x00, 0x00, 0x01, 0x42, 0x00, 0x00, 0x06, 0xB7, 0x00, 0x00, 0x12,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x20, 0x20, 0x20, 0x20},
}
