package pipeline

import (
	"runtime"
	"testing"

	"github.com/matzehuels/classgraph/pkg/config"
	errs "github.com/matzehuels/classgraph/pkg/errors"
	"github.com/matzehuels/classgraph/pkg/scan"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) error = %v, want code %v", tt.format, err, errs.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Root: "."}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Format != FormatJSON {
		t.Errorf("Format = %q, want json", opts.Format)
	}
	if opts.Workers != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers = %d, want GOMAXPROCS", opts.Workers)
	}
	if len(opts.Ignore) != len(scan.DefaultIgnore) {
		t.Errorf("Ignore = %v, want defaults", opts.Ignore)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	opts.Format = "bogus"
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call should be a no-op: %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing root", Options{}},
		{"bad format", Options{Root: ".", Format: "svg"}},
		{"negative workers", Options{Root: ".", Workers: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output = "out.dot"
	cfg.Format = config.FormatDOT
	cfg.Workers = 2
	cfg.Weight = config.Weight{Base: 10, PerDependency: 1}

	opts := FromConfig("/src", cfg)
	if opts.Root != "/src" || opts.Output != "out.dot" || opts.Format != FormatDOT || opts.Workers != 2 {
		t.Errorf("FromConfig() = %+v", opts)
	}
	if opts.ModuleValue != 10 {
		t.Errorf("ModuleValue = %d, want 10", opts.ModuleValue)
	}
	if got := opts.Weight(2); got != 13 {
		t.Errorf("Weight(2) = %d, want 13", got)
	}

	b := opts.BuildOptions()
	if b.ModuleValue != 10 || b.Weight(0) != 11 {
		t.Errorf("BuildOptions() = %+v", b)
	}
}
