package typedesc

import "github.com/tliron/commonlog"

// CommonLogSink adapts WarnSink to github.com/tliron/commonlog, the
// logging library the teacher already wires into its LSP server. Each
// warn-mode emission becomes one structured log line rather than a bare
// stderr write, carrying the failing descriptor's rendering and the
// actual value alongside every collected record's path.
type CommonLogSink struct {
	Log commonlog.Logger
}

// NewCommonLogSink builds a sink backed by commonlog's named logger
// registry, the same pattern glsp itself uses for its own subsystems.
func NewCommonLogSink(name string) *CommonLogSink {
	return &CommonLogSink{Log: commonlog.GetLogger(name)}
}

func (s *CommonLogSink) Warn(d Descriptor, value any, records []ErrorRecord) {
	if s.Log == nil {
		return
	}
	for _, rec := range records {
		path := rec.Path.String()
		if path == "" {
			path = "<root>"
		}
		s.Log.Warningf("%s: expected %s, got %s", path, rec.Expected.String(), describe(rec.Actual))
	}
}
