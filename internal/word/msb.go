package word

import "math/bits"

const (
	// clusterHigh has the leading bit of each of the eight 8-bit clusters set.
	clusterHigh = 0x8080808080808080

	// gather moves bit 8i to bit 49+i. The partial products 8i+7j are pairwise
	// distinct, so the multiplication never carries.
	gather = 0x0002040810204081

	// Four 16-bit lanes used to compare a nibble against 1, 2, 4 and 8 at once.
	lanes      = 0x0001000100010001
	sentinels  = 0x8000800080008000
	thresholds = 0x0008000400020001
)

// MSB returns the index of the highest set bit of x, or -1 if x is 0.
func MSB(x uint64) int {
	if activeStrategy == Hardware {
		return MSBHardware(x)
	}
	return MSBWordParallel(x)
}

// LSB returns the index of the lowest set bit of x, or -1 if x is 0.
func LSB(x uint64) int {
	if x == 0 {
		return -1
	}
	// (x-1)^x keeps the lowest set bit and every bit below it.
	return MSB((x - 1) ^ x)
}

// MSBHardware computes MSB with the leading-zero-count instruction.
func MSBHardware(x uint64) int {
	return bits.Len64(x) - 1
}

// MSBWordParallel computes MSB in a constant number of word operations.
//
// The word is split into eight clusters of eight bits. One subtraction flags
// the non-empty clusters, one multiplication packs the flags into a byte, and
// the same byte-sized msb finds first the winning cluster and then the offset
// inside it.
func MSBWordParallel(x uint64) int {
	if x == 0 {
		return -1
	}

	// A cluster is non-empty if its leading bit is set or its low seven bits
	// are. 0x80 - c keeps the leading bit only when c == 0.
	flags := (x | ^(clusterHigh - (x &^ clusterHigh))) & clusterHigh

	// Cluster i lands at bit i of summary.
	summary := (((flags >> 7) * gather) >> 49) & 0xff

	c := msb8(summary)
	offset := msb8((x >> (8 * c)) & 0xff)

	return 8*c + offset
}

// msb8 returns the msb of a non-zero byte.
func msb8(y uint64) int {
	// hi is 1 exactly when the upper nibble is non-empty.
	hi := ((y >> 4) + 0xf) >> 4
	nibble := y >> (4 * hi)
	return int(4*hi) + msb4(nibble)
}

// msb4 returns the msb of a nibble, or -1 for 0.
func msb4(y uint64) int {
	// Lane l keeps its sentinel iff y >= 2^l; the count of sentinels is msb+1.
	d := ((y*lanes | sentinels) - thresholds) & sentinels
	count := ((d >> 15) * lanes) >> 48
	return int(count) - 1
}
