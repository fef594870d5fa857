package fpenv

import (
	"math"
	"runtime"
	"testing"
)

func TestSetFlushDenormalsIdempotent(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("FTZ/DAZ control only implemented for amd64")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prev := GetFlushDenormals()
	defer SetFlushDenormals(prev)

	if ok := SetFlushDenormals(true); !ok {
		t.Fatal("SetFlushDenormals(true) returned false on amd64")
	}
	if !GetFlushDenormals() {
		t.Fatal("GetFlushDenormals() false after enabling")
	}
	// idempotent
	SetFlushDenormals(true)
	if !GetFlushDenormals() {
		t.Fatal("GetFlushDenormals() false after re-enabling")
	}

	SetFlushDenormals(false)
	if GetFlushDenormals() {
		t.Fatal("GetFlushDenormals() true after disabling")
	}
}

// minNormal32 is FLT_MIN, the smallest positive normal float32; half of it
// is subnormal. It is a package-level variable so that minNormal32/2 is
// computed at run time under the current MXCSR mode.
var minNormal32 = math.Float32frombits(0x00800000)

func TestFTZFunctional(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("FTZ/DAZ control only implemented for amd64")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prev := GetFlushDenormals()
	defer SetFlushDenormals(prev)

	SetFlushDenormals(false)
	if minNormal32/2 == 0 {
		t.Skip("platform already flushes subnormals with FTZ/DAZ disabled")
	}

	SetFlushDenormals(true)
	got := minNormal32 / 2
	if got != 0 {
		t.Fatalf("FLT_MIN/2 = %v, want 0 with FTZ/DAZ enabled", got)
	}
}

func TestWithFlushDenormalsRestores(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("FTZ/DAZ control only implemented for amd64")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	SetFlushDenormals(false)
	WithFlushDenormals(true, func() {
		if !GetFlushDenormals() {
			t.Fatal("expected FTZ/DAZ enabled inside scope")
		}
	})
	if GetFlushDenormals() {
		t.Fatal("expected FTZ/DAZ restored to disabled after scope")
	}
}

func TestUnsupportedArchNoop(t *testing.T) {
	if runtime.GOARCH == "amd64" {
		t.Skip("amd64 has a real implementation")
	}
	if SetFlushDenormals(true) {
		t.Fatal("expected no-op false on unsupported arch")
	}
	if GetFlushDenormals() {
		t.Fatal("expected false on unsupported arch")
	}
}
