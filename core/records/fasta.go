// core/records/fasta.go
package records

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ScanFASTA parses FASTA from r and calls emit once per record, in file
// order. Cancellation via ctx is checked between lines. Sequence lines are
// concatenated with surrounding whitespace removed; sequence data before the
// first header is emitted under an empty ID.
func ScanFASTA(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		started bool
		seq     strings.Builder
	)
	flush := func() error {
		if !started && seq.Len() == 0 {
			return nil
		}
		err := emit(Record{ID: id, Seq: seq.String()})
		seq.Reset()
		return err
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			started = true
			continue
		}
		seq.Write(bytes.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "fasta scan")
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
