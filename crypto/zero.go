package crypto

import "runtime"

// zeroBytes overwrites b with zeros in place. runtime.KeepAlive prevents the
// compiler from eliminating the write as dead code ahead of b going out of
// scope, per spec.md §5's key-material zeroization note.
func zeroBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
