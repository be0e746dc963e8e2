//go:build !gldebug

package glbackend

// Release builds skip error polling; build with -tags gldebug to enable it.
func checkError(string) {}
