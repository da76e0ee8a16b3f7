// Command maple compiles the Maple color palettes into a Zed theme extension.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/maple"
	"github.com/fwojciec/maple/bubbletea"
	"github.com/fwojciec/maple/chroma"
	"github.com/fwojciec/maple/clipboard"
	"github.com/fwojciec/maple/colorful"
	"github.com/fwojciec/maple/fs"
	"github.com/fwojciec/maple/godiff"
	maplehttp "github.com/fwojciec/maple/http"
	"github.com/fwojciec/maple/lipgloss"
	"github.com/fwojciec/maple/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// env carries what every command needs after flags and config are resolved.
type env struct {
	cfg    Config
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := newViper()
	var configPath string

	root := &cobra.Command{
		Use:           "maple",
		Short:         "Compile Maple color palettes into a Zed theme",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./maple.yaml)")
	flags.String("palette", "", "YAML palette file (default: built-in schemes)")
	flags.String("output-theme", "", "theme file path")
	flags.String("output-manifest", "", "extension manifest path")
	flags.Bool("strict", false, "fail when two style keys resolve to the same path")
	flags.Int("workers", 0, "schemes compiled concurrently")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	for key, flag := range map[string]string{
		keyPalette:        "palette",
		keyOutputTheme:    "output-theme",
		keyOutputManifest: "output-manifest",
		keyStrict:         "strict",
		keyWorkers:        "workers",
		keyLogLevel:       "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	setup := func() (*env, error) {
		cfg, err := loadConfig(v, configPath)
		if err != nil {
			return nil, err
		}
		return &env{cfg: cfg, stdout: stdout, stderr: stderr}, nil
	}

	root.AddCommand(
		newBuildCmd(setup),
		newCheckCmd(setup),
		newPreviewCmd(setup),
		newSchemaCmd(v, setup),
	)
	return root
}

func (e *env) generator() *Generator {
	return &Generator{
		Config: e.cfg,
		Loader: yaml.NewLoader(),
		Model:  colorful.NewModel(),
	}
}

func newBuildCmd(setup func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Write the theme file and extension manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			logger, err := newLogger(e.stderr, e.cfg.LogLevel)
			if err != nil {
				return err
			}
			app := &BuildApp{
				Generator: e.generator(),
				Store:     fs.NewStore(""),
				Logger:    logger,
			}
			return app.Run(cmd.Context())
		},
	}
}

func newCheckCmd(setup func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Fail if the generated files are out of date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			logger, err := newLogger(e.stderr, e.cfg.LogLevel)
			if err != nil {
				return err
			}
			app := &CheckApp{
				Generator: e.generator(),
				Store:     fs.NewStore(""),
				Differ:    godiff.NewDiffer(),
				Out:       e.stdout,
				Logger:    logger,
			}
			return app.Run(cmd.Context())
		},
	}
}

func newPreviewCmd(setup func() (*env, error)) *cobra.Command {
	var samplePath string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the compiled themes in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			opts := []lipgloss.Option{lipgloss.WithTokenizer(chroma.NewTokenizer())}
			if samplePath != "" {
				opt, err := sampleOption(samplePath, chroma.NewDetector())
				if err != nil {
					return err
				}
				opts = append(opts, opt)
			}
			app := &PreviewApp{
				Generator: e.generator(),
				Previewer: bubbletea.NewPreviewer(
					lipgloss.NewRenderer(opts...),
					bubbletea.WithClipboard(clipboard.NewSystem()),
				),
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&samplePath, "sample", "", "source file shown in the preview")
	return cmd
}

// sampleOption reads the sample file at path and detects its language.
func sampleOption(path string, detector maple.LanguageDetector) (lipgloss.Option, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample: %w", err)
	}
	return lipgloss.WithSample(detector.DetectFromPath(path), string(src)), nil
}

func newSchemaCmd(v *viper.Viper, setup func() (*env, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [version]",
		Short: "Download the Zed theme JSON schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			logger, err := newLogger(e.stderr, e.cfg.LogLevel)
			if err != nil {
				return err
			}
			app := &SchemaApp{
				Fetcher: maplehttp.NewFetcher(),
				Store:   fs.NewStore(""),
				Dir:     e.cfg.SchemaDir,
				Logger:  logger,
			}
			if len(args) == 1 {
				app.Version = args[0]
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().String("dir", "", "directory the schema is written to")
	_ = v.BindPFlag(keySchemaDir, cmd.Flags().Lookup("dir"))
	return cmd
}
