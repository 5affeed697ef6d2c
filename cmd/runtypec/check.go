package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/runtype-lang/runtype/internal/demomod"
	"github.com/runtype-lang/runtype/internal/orchestrator"
	"github.com/runtype-lang/runtype/internal/typedesc"
)

// sample pairs a registered type name with a value to check it against
// and whether acceptance is expected, so runCheck can report a pass/fail
// summary the way a test fixture would.
type sample struct {
	typeName string
	value    any
	want     bool
}

func runCheck(stdout, stderr io.Writer, configPath string) error {
	cfg, err := loadConfiguration(configPath)
	if err != nil {
		return err
	}

	sink := typedesc.NewCommonLogSink("runtypec")
	ctx := typedesc.NewContext(sink)

	switch cfg.mode() {
	case "off":
		ctx.SetMode(typedesc.ModeOff)
	case "warn":
		ctx.SetMode(typedesc.ModeWarn)
	default:
		ctx.SetMode(typedesc.ModeAssert)
	}

	result, err := orchestrator.Run(ctx, demomod.Module(), cfg.SuppressTypeNames...)
	if err != nil {
		return err
	}
	for _, diag := range result.Diagnostics {
		fmt.Fprintf(stderr, "diagnostic[%s]: %s\n", diag.Kind, diag.Message)
	}

	samples := []sample{
		{"Point", map[string]any{"x": 1.0, "y": 2.0}, true},
		{"Point", map[string]any{"x": 1.0}, false},
		{"Named", map[string]any{"x": 1.0, "y": 2.0, "name": "origin"}, true},
		{"Named", map[string]any{"x": 1.0, "y": 2.0}, false},
		{"Counter", map[string]any{"start": 0.0, "increment": typedesc.RuntimeFunc(func(args []any) (any, error) { return 1.0, nil })}, true},
	}

	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	allOK := true
	for _, s := range samples {
		desc, ok := ctx.Lookup(s.typeName)
		if !ok {
			bad.Fprintf(stdout, "FAIL  %-8s not registered\n", s.typeName)
			allOK = false
			continue
		}
		got := desc.Accepts(s.value)
		if got == s.want {
			good.Fprintf(stdout, "PASS  %s accepts=%v\n", s.typeName, got)
		} else {
			bad.Fprintf(stdout, "FAIL  %s accepts=%v want=%v\n", s.typeName, got, s.want)
			allOK = false
		}
	}

	if identity, ok := ctx.Lookup("identity"); ok {
		gen, isGeneric := identity.(*typedesc.GenericDescriptor)
		if isGeneric {
			intCall := gen.Instantiate().(*typedesc.FunctionDescriptor)
			if err := intCall.AssertParams([]any{1.0}); err != nil {
				bad.Fprintf(stdout, "FAIL  identity(1) %s\n", err)
				allOK = false
			} else {
				good.Fprintln(stdout, "PASS  identity(1)")
			}
			strCall := gen.Instantiate().(*typedesc.FunctionDescriptor)
			if err := strCall.AssertParams([]any{"a"}); err != nil {
				bad.Fprintf(stdout, "FAIL  identity(\"a\") %s\n", err)
				allOK = false
			} else {
				good.Fprintln(stdout, "PASS  identity(\"a\")")
			}
		}
	}

	if !allOK {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Fprintln(stdout, "all checks passed")
	return nil
}
