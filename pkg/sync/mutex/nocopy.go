package mutex

// NoCopy may be added to structs which must not be copied after first use.
// It has no runtime behavior; `go vet` (copylocks) reports any copy of a
// value containing it because of its Lock and Unlock methods.
//
// Embed it as a named, unexported field:
//
//	type conn struct {
//		noCopy mutex.NoCopy
//		...
//	}
type NoCopy struct{}

// Lock is a no-op used by `go vet -copylocks`.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by `go vet -copylocks`.
func (*NoCopy) Unlock() {}
