package domain

import (
	"io"
	"log"
	"os"
)

// Diag is the diagnostic sink for non-fatal warnings the core must emit
// without returning an error, currently just *DuplicateKeyOverwrite*
// (§7, §9: "B+Tree overwrites and warns; tests must check for the
// warning channel"). It is a package-level logger, swappable the same
// way a `logFatal` indirection would be, so tests can redirect it to a
// buffer instead of patching global state by hand.
var Diag = log.New(os.Stderr, "reldb: ", log.LstdFlags)

// SetDiagOutput redirects the diagnostic sink, returning a function that
// restores the previous destination. Intended for test use:
//
//	restore := domain.SetDiagOutput(&buf)
//	defer restore()
func SetDiagOutput(w io.Writer) (restore func()) {
	prev := Diag.Writer()
	Diag.SetOutput(w)
	return func() { Diag.SetOutput(prev) }
}

// WarnDuplicateKey logs the DuplicateKeyOverwrite warning (§7) for a
// B+Tree put that overwrote an existing key.
func WarnDuplicateKey(key string) {
	Diag.Printf("duplicate key overwrite: %s", key)
}
