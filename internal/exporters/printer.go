package exporters

import (
	"io"
	"strings"

	"github.com/mrlokans/bookmarks/internal/entities"
)

const (
	FieldSeparator  = " "
	RecordSeparator = "\n"
)

// Printer writes one line per record with the fields chosen by its FormatSpec.
type Printer struct {
	w    io.Writer
	spec FormatSpec
}

func NewPrinter(w io.Writer, spec FormatSpec) *Printer {
	return &Printer{w: w, spec: spec}
}

// Print writes r immediately; there is no buffering between records.
func (p *Printer) Print(r entities.Record) error {
	values := make([]string, len(p.spec))
	for i, f := range p.spec {
		values[i] = f.value(r)
	}

	_, err := io.WriteString(p.w, strings.Join(values, FieldSeparator)+RecordSeparator)
	return err
}
