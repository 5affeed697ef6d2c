// Command runtype-lsp is a thin diagnostics-over-LSP adapter: it wires
// the orchestrator's warning sink to textDocument/publishDiagnostics
// instead of a logger, reusing the teacher's own LSP server skeleton
// (cmd/lsp-server). There is no host source parser in this port (spec.md
// §9 Non-goals), so "validating a document" means re-running the fixed
// demo module's orchestrator pass and reporting its conversion
// diagnostics plus any assertion failures surfaced along the way — proof
// the sink plumbing reaches a real LSP client, not a language server for
// a language this repository parses.
package main

import (
	"fmt"
	"os"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glsp_server "github.com/tliron/glsp/server"

	"github.com/runtype-lang/runtype/internal/demomod"
	"github.com/runtype-lang/runtype/internal/orchestrator"
	"github.com/runtype-lang/runtype/internal/typedesc"
)

const lsName = "runtype-lsp"

var version = "0.0.1"

func main() {
	fmt.Fprintf(os.Stderr, "runtype-lsp starting\n")

	server := glsp_server.NewServer(NewServer(), lsName, false)

	if err := server.RunStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

type Server struct {
	handler   protocol.Handler
	documents map[protocol.DocumentUri]protocol.TextDocumentItem
}

func NewServer() *Server {
	s := Server{
		documents: map[protocol.DocumentUri]protocol.TextDocumentItem{},
	}
	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
	}
	return &s
}

func (s *Server) Handle(context *glsp.Context) (r any, validMethod bool, validParams bool, err error) {
	return s.handler.Handle(context)
}

func (s *Server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (*Server) initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (*Server) shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (*Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// validate runs one orchestrator pass under warn mode so every structural
// mismatch it finds is collected rather than aborting, then publishes
// both the conversion diagnostics and the warn-mode records as LSP
// diagnostics against uri.
func (s *Server) validate(lspContext *glsp.Context, uri protocol.DocumentUri) {
	sink := &lspSink{}
	ctx := typedesc.NewContext(sink)
	ctx.SetMode(typedesc.ModeWarn)

	result, err := orchestrator.Run(ctx, demomod.Module())

	diagnostics := []protocol.Diagnostic{}
	source := lsName
	addDiagnostic := func(message string) {
		severity := protocol.DiagnosticSeverityWarning
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			},
			Severity: &severity,
			Source:   &source,
			Message:  message,
		})
	}

	if err != nil {
		addDiagnostic(err.Error())
	}
	for _, diag := range result.Diagnostics {
		addDiagnostic(fmt.Sprintf("[%s] %s", diag.Kind, diag.Message))
	}
	for _, msg := range sink.messages {
		addDiagnostic(msg)
	}

	go lspContext.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (s *Server) textDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.documents[params.TextDocument.URI] = params.TextDocument
	s.validate(context, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.documents[params.TextDocument.URI]
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc.Text = whole.Text
			s.documents[params.TextDocument.URI] = doc
		}
	}
	s.validate(context, params.TextDocument.URI)
	return nil
}
