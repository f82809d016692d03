package importer

import (
	"io"

	"github.com/MrJamesThe3rd/gymd/internal/importer/roster"
)

// Format identifies a supported roster file layout.
type Format string

const (
	FormatRoster Format = "roster"
)

type Importer interface {
	Parse(r io.Reader) ([]roster.Record, error)
}
