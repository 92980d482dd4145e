package treewidth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/treewidth/solver"
)

// ParseOptions decodes TOML over DefaultOptions and validates the result.
// Unknown keys are rejected.
//
//	base_threshold = 10
//	solver = "min-degree"
//	split_components = true
//	refine = false
//	validate = true
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, fmt.Errorf("ParseOptions: %v: %w", err, ErrInvalidOptions)
	}

	return opts, checkDecoded(md, opts)
}

// LoadOptions reads a TOML file with the keys accepted by ParseOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("LoadOptions(%s): %w", path, err)
	}

	return opts, checkDecoded(md, opts)
}

func checkDecoded(md toml.MetaData, opts Options) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidOptions)
	}

	return opts.validate()
}

// validate checks Options for internal consistency.
func (o Options) validate() error {
	if o.BaseThreshold < 0 {
		return fmt.Errorf("base_threshold=%d < 0: %w", o.BaseThreshold, ErrInvalidOptions)
	}
	s, err := solver.ByName(o.Solver)
	if err != nil {
		return fmt.Errorf("solver %q: %w", o.Solver, ErrInvalidOptions)
	}
	if s.Exact() && o.BaseThreshold > solver.MaxExactVertices {
		return fmt.Errorf("base_threshold=%d > %d for %s: %w",
			o.BaseThreshold, solver.MaxExactVertices, o.Solver, ErrInvalidOptions)
	}

	return nil
}
