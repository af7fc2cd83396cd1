package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"jwtgen/internal/apperr"
	"jwtgen/internal/config"
	"jwtgen/internal/logging"
	"jwtgen/internal/token"
	"jwtgen/internal/version"
)

const (
	FlagFile      = "file"
	FlagFileShort = "f"
)

// Options is the resolved invocation. It is built once from the flags and
// handed by value to Generate.
type Options struct {
	Path string
}

// NewRootCommand builds the jwtgen command. The --file flag is required: the
// old fallback to ./input.txt is not supported.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwtgen -f <file>",
		Short: "Sign the claims of a config file into a JWT",
		Long: `jwtgen reads the [payload] table and secretkey.value from a TOML
(or .yaml/.yml) file and prints an HS256 JWT carrying the payload as claims.`,
		Example:       "jwtgen -f config.toml",
		Version:       version.Version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			return logging.Setup(cmd.ErrOrStderr(), settings)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := ResolveOptions(cmd)
			if err != nil {
				return err
			}

			tokenString, err := Generate(opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tokenString)
			return err
		},
	}

	cmd.Flags().StringP(FlagFile, FlagFileShort, "", "Path to the config file holding [payload] and [secretkey]")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperr.Usage(err, "parsing flags")
	})

	return cmd
}

// ResolveOptions reads the config path from the parsed flags.
func ResolveOptions(cmd *cobra.Command) (Options, error) {
	path, err := cmd.Flags().GetString(FlagFile)
	if err != nil {
		return Options{}, apperr.Usage(err, "reading --%s", FlagFile)
	}

	if path == "" {
		return Options{}, apperr.Usage(nil, "required flag --%s (-%s) not set", FlagFile, FlagFileShort)
	}

	log.Debug().Str("path", path).Msg("Resolved config path")

	return Options{Path: path}, nil
}

// Generate loads the config named by opts and returns the signed token.
func Generate(opts Options) (string, error) {
	cfg, err := config.LoadFromPath(opts.Path)
	if err != nil {
		return "", err
	}

	log.Debug().Strs("claims", cfg.Payload.Keys()).Msg("Loaded payload")

	return token.Sign(cfg.Payload, cfg.Secret)
}

// Execute runs jwtgen with args and returns the process exit code. It is the
// only place errors are reported.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, apperr.ErrUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return apperr.ExitCode(err)
	}

	return 0
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return apperr.Usage(nil, "unexpected arguments %q", args)
	}
	return nil
}
