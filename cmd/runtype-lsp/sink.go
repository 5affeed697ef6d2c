package main

import (
	"fmt"

	"github.com/runtype-lang/runtype/internal/typedesc"
)

// lspSink buffers warn-mode emissions for one validation pass so the
// caller can turn them into a single publishDiagnostics batch, instead of
// notifying the client once per record the way a bare stderr sink would.
type lspSink struct {
	messages []string
}

func (s *lspSink) Warn(d typedesc.Descriptor, value any, records []typedesc.ErrorRecord) {
	for _, rec := range records {
		path := rec.Path.String()
		if path == "" {
			path = "<root>"
		}
		s.messages = append(s.messages, fmt.Sprintf("%s: expected %s, got %v", path, rec.Expected.String(), value))
	}
}
