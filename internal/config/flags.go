package config

import (
	"flag"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the pairs; entries without '=' are skipped and later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Flags represents the command-line parameters shared by every command.
type Flags struct {
	Path string
	Seed int64
	Sets KVList
}

// NewFlags returns Flags populated with sensible defaults.
func NewFlags() *Flags {
	return &Flags{}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", f.Path, "path to config.yaml (empty = use defaults)")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "RNG seed (0 = use config)")
	fs.Var(&f.Sets, "set", "config override in key=value form (repeatable)")
}

// Resolve loads the config file and applies the command-line overrides.
func (f *Flags) Resolve() (*Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(f.Sets.Map()); err != nil {
		return nil, err
	}
	if f.Seed != 0 {
		cfg.Population.Seed = f.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
