//go:build amd64

package fpenv

import "golang.org/x/sys/cpu"

// MXCSR bit positions (Intel SDM Vol. 1, §10.2.3).
const (
	mxcsrFTZ = 1 << 15 // Flush-To-Zero
	mxcsrDAZ = 1 << 6  // Denormals-Are-Zero
)

// getMXCSR/setMXCSR are implemented in fpenv_amd64.s using the
// STMXCSR/LDMXCSR instructions directly; there is no portable way to
// reach MXCSR through golang.org/x/sys, which only exposes feature
// detection (cpu.X86.HasSSE2), not register control.
func getMXCSR() uint32
func setMXCSR(v uint32)

func hasMXCSRSupport() bool {
	// MXCSR itself predates SSE2, but DAZ requires SSE2 or later to be
	// architecturally guaranteed present; gate on that the way
	// vectorized-math code in the retrieval pack gates asm dispatch on a
	// feature check before using it.
	return cpu.X86.HasSSE2
}

func setFlushDenormals(enable bool) bool {
	if !hasMXCSRSupport() {
		return false
	}
	cur := getMXCSR()
	if enable {
		cur |= mxcsrFTZ | mxcsrDAZ
	} else {
		cur &^= mxcsrFTZ | mxcsrDAZ
	}
	setMXCSR(cur)
	return true
}

func getFlushDenormals() bool {
	if !hasMXCSRSupport() {
		return false
	}
	cur := getMXCSR()
	return cur&(mxcsrFTZ|mxcsrDAZ) == (mxcsrFTZ | mxcsrDAZ)
}
