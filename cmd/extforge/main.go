package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/extforge/extforge-go/internal/buildfile"
	"github.com/extforge/extforge-go/internal/config"
	"github.com/extforge/extforge-go/internal/manifest"
	"github.com/extforge/extforge-go/internal/pkgmeta"
	"github.com/extforge/extforge-go/internal/utils"
	"github.com/extforge/extforge-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "extforge",
	Short: "Generate browser-extension manifests",
	Long: `Extforge derives a manifest.json for a browser extension from the
entrypoints declared in the project build file, the project's package.json,
and the target platform (browser family and manifest schema version).

Features the target does not support are omitted with a warning instead of
failing the build.`,
	Version: version.Short(),
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./extforge.yaml)")
	rootCmd.PersistentFlags().StringP("browser", "b", config.DefaultBrowser, "Target browser family (chromium, firefox)")
	rootCmd.PersistentFlags().IntP("manifest-version", "m", config.DefaultManifestVersion, "Target manifest schema version (2 or 3)")
	rootCmd.PersistentFlags().StringP("outdir", "o", config.DefaultOutputDir, "Output directory")
	rootCmd.PersistentFlags().String("mode", config.ModeDevelopment, "Build mode (development, production)")
	rootCmd.PersistentFlags().StringP("buildfile", "f", "", "Build file path (default is ./extforge.{yaml,yml,json,toml})")
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("target.browser", rootCmd.PersistentFlags().Lookup("browser"))
	_ = viper.BindPFlag("target.manifest_version", rootCmd.PersistentFlags().Lookup("manifest-version"))
	_ = viper.BindPFlag("output.directory", rootCmd.PersistentFlags().Lookup("outdir"))
	_ = viper.BindPFlag("output.mode", rootCmd.PersistentFlags().Lookup("mode"))

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble the manifest and write it to the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, cfg, err := generate(cmd)
		if err != nil {
			return err
		}

		// Handle graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		writer := manifest.NewWriter(manifest.WriterOptions{
			OutDir:     cfg.Output.Directory,
			Production: cfg.Production(),
		})
		if err := writer.Write(ctx, doc); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}

		log.Info().
			Str("path", writer.Path()).
			Str("mode", cfg.Output.Mode).
			Msg("manifest written")
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the assembled manifest without writing it",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, _, err := generate(cmd)
		if err != nil {
			return err
		}

		data, err := manifest.NewWriter(manifest.WriterOptions{}).Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

// generate runs everything up to the write: config, package metadata, build
// file, assembly.
func generate(cmd *cobra.Command) (manifest.Document, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	dir, _ := cmd.Flags().GetString("dir")

	pkg, err := pkgmeta.Load(dir)
	if err != nil {
		return nil, nil, err
	}

	path, _ := cmd.Flags().GetString("buildfile")
	if path == "" {
		path, err = findBuildFile(dir)
		if err != nil {
			return nil, nil, err
		}
	}
	bf, err := buildfile.NewLoader().Load(path)
	if err != nil {
		return nil, nil, err
	}

	assembler := manifest.NewAssembler(manifest.AssemblerOptions{
		Browser:         cfg.Browser(),
		ManifestVersion: cfg.Target.ManifestVersion,
		Overrides:       cfg.Manifest,
		Warnings:        log.WarningSink(),
		Logger:          log,
	})

	doc, err := assembler.Assemble(pkg, bf.Entrypoints, nil)
	if err != nil {
		return nil, nil, err
	}
	return doc, cfg, nil
}

// findBuildFile locates the project build file by extension preference
func findBuildFile(dir string) (string, error) {
	for _, name := range []string{"extforge.yaml", "extforge.yml", "extforge.json", "extforge.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no extforge.{yaml,yml,json,toml} in %s", buildfile.ErrFileNotFound, dir)
}
