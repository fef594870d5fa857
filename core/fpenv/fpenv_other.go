//go:build !amd64

package fpenv

// No FTZ/DAZ control is implemented for this architecture; per spec.md
// §5 this is a no-op and GetFlushDenormals always reports false.
func setFlushDenormals(enable bool) bool { return false }
func getFlushDenormals() bool            { return false }
