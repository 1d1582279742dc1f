//go:build amd64

package word

import "golang.org/x/sys/cpu"

func init() {
	// LZCNT shipped no later than BMI1 on both Intel and AMD parts.
	hasLeadingZeroCount = cpu.X86.HasBMI1
	initCapabilities()
}
