package bit

import "testing"

func TestCombine(t *testing.T) {
	tests := []struct {
		high, low uint8
		expected  uint16
	}{
		{0xAB, 0xCD, 0xABCD},
		{0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFFFF},
		{0x07, 0xFF, 0x07FF},
	}

	for _, tt := range tests {
		result := Combine(tt.high, tt.low)
		if result != tt.expected {
			t.Errorf("Combine(%X, %X) = %X; want %X", tt.high, tt.low, result, tt.expected)
		}
	}
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		index    uint
		value    uint8
		expected bool
	}{
		{0, 0b00000001, true},
		{0, 0b00000000, false},
		{7, 0b10000000, true},
		{3, 0b11110111, false},
	}

	for _, tt := range tests {
		result := IsSet(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("IsSet(%d, %08b) = %v; want %v", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestLowHigh(t *testing.T) {
	if got := Low(0x1234); got != 0x34 {
		t.Errorf("Low(0x1234) = %X; want 0x34", got)
	}
	if got := High(0x1234); got != 0x12 {
		t.Errorf("High(0x1234) = %X; want 0x12", got)
	}
}

func TestExtractBits(t *testing.T) {
	tests := []struct {
		value             uint8
		highBit, lowBit   uint
		expected          uint8
	}{
		{0b11010110, 6, 4, 0b101},
		{0b11111111, 7, 0, 0xFF},
		{0b00000111, 2, 0, 0b111},
	}

	for _, tt := range tests {
		result := ExtractBits(tt.value, tt.highBit, tt.lowBit)
		if result != tt.expected {
			t.Errorf("ExtractBits(%08b, %d, %d) = %b; want %b", tt.value, tt.highBit, tt.lowBit, result, tt.expected)
		}
	}
}
