//go:build arm64

package word

func init() {
	// CLZ is part of the base A64 instruction set.
	hasLeadingZeroCount = true
	initCapabilities()
}
