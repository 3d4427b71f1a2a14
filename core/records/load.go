// core/records/load.go
package records

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// Load reads every record of path in file order. The file is closed before
// Load returns, on every path.
func Load(ctx context.Context, path, format string) ([]Record, error) {
	if err := CheckFormat(format); err != nil {
		return nil, err
	}
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	switch format {
	case FormatFASTA:
		var out []Record
		err := ScanFASTA(ctx, rc, func(r Record) error {
			out = append(out, r)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		return out, nil
	default:
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return SplitParagraphs(string(data)), nil
	}
}
