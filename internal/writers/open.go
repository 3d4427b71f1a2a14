// internal/writers/open.go
package writers

import (
	"io"
	"os"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens the report destination. "-" selects stdout, which is not
// closed by the returned Closer. Files are truncated.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}
