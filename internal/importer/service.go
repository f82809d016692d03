package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/gymd/internal/importer/roster"
)

type Service struct {
	rosterImporter Importer
}

func NewService() *Service {
	return &Service{
		rosterImporter: roster.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]roster.Record, error) {
	var imp Importer

	switch format {
	case FormatRoster:
		imp = s.rosterImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return imp.Parse(r)
}
