package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"cppcheck-junit/internal/cppcheck"
)

// Msgpack writes the same document as JSON in MessagePack encoding, keyed by
// the json field names.
func Msgpack(w io.Writer, res *cppcheck.Result) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(BuildDiagnosticsOutput(res))
}
