package main

import (
	"fmt"
	"os"

	"github.com/amonks/prodcode/internal/config"
	"github.com/amonks/prodcode/internal/paths"
	"github.com/amonks/prodcode/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	stateDirFlag    string
	backendFlag     string
	maxAttemptsFlag int
	verboseFlag     bool
)

var globalFlagAliases = map[string]string{
	"dir":      "state-dir",
	"attempts": "max-attempts",
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&stateDirFlag, "state-dir", "", "Registry directory (default ~/.local/state/prodcode)")
	flags.StringVar(&backendFlag, "backend", "", "Registry backend: json or sqlite")
	flags.IntVar(&maxAttemptsFlag, "max-attempts", 0, "Maximum existence checks per code")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log each existence check to stderr")
	rootCmd.SetGlobalNormalizationFunc(flagAliasNormalizer(globalFlagAliases))
}

// flagAliasNormalizer maps alias flag names onto their canonical names.
func flagAliasNormalizer(aliases map[string]string) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return pflag.NormalizedName(name)
	}
}

// loadSettings merges config files with command-line flags. Flags win.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	if dir := os.Getenv(paths.StateDirEnv); dir != "" {
		cfg.Registry.Dir = dir
	}

	flags := cmd.Flags()
	if flags.Changed("state-dir") {
		cfg.Registry.Dir = stateDirFlag
	}
	if flags.Changed("backend") {
		cfg.Registry.Backend = backendFlag
	}
	if flags.Changed("max-attempts") {
		if maxAttemptsFlag < 1 {
			return nil, fmt.Errorf("--max-attempts must be at least 1, got %d", maxAttemptsFlag)
		}
		cfg.Code.MaxAttempts = maxAttemptsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openRegistry opens the registry configured for cmd.
func openRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	opts := registry.Options{
		Backend:     cfg.Registry.Backend,
		Dir:         cfg.Registry.Dir,
		MaxAttempts: cfg.Code.MaxAttempts,
	}
	if verboseFlag {
		opts.Logger = registry.NewConsoleLogger(cmd.ErrOrStderr())
	}

	reg, err := registry.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	return reg, nil
}
