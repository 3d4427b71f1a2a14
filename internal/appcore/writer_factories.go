// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"miniblast/core/engine"
	"miniblast/internal/writers"
)

// WriterFactory starts the report writer for one run.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error)
}

// HitWriterFactory resolves a registered report format.
type HitWriterFactory struct {
	Format string
	Header bool
}

func NewHitWriterFactory(format string, header bool) HitWriterFactory {
	return HitWriterFactory{Format: format, Header: header}
}

func (f HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error) {
	return writers.StartHitWriter(out, f.Format, writers.Options{Header: f.Header}, bufSize)
}
