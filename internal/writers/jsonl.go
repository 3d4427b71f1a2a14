// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"miniblast/core/engine"
	"miniblast/internal/jsonlutil"
	"miniblast/internal/output"
)

func init() {
	Register(output.FormatJSONL, func(w io.Writer, in <-chan engine.Hit, _ Options) error {
		return jsonlutil.Encode[engine.Hit](w, in,
			func(enc *json.Encoder, h engine.Hit) error {
				if h.Empty() {
					return nil
				}
				return enc.Encode(output.ToAPIHits(h))
			},
			IsBrokenPipe,
		)
	})
}
