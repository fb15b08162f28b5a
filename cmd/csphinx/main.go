package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cdoctools/csphinx-go/internal/app"
	"github.com/cdoctools/csphinx-go/internal/config"
	"github.com/cdoctools/csphinx-go/internal/manifest"
	"github.com/cdoctools/csphinx-go/pkg/version"
)

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "csphinx",
	Short: "Generate Sphinx RST documentation from a compile commands manifest",
	Long: `csphinx scans a compile_commands.json build manifest and generates
Sphinx-consumable RST documentation for every C source it names: one
document per source file, carrying the file's leading overview comment and
c:autodoc directives for its public interface and implementation, plus an
api.rst master index.`,
	Version: version.Short(),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.csphinx/config.yaml)")
	rootCmd.PersistentFlags().StringP("project-root", "r", "", "Root directory containing project files")
	rootCmd.PersistentFlags().StringP("source-location", "s", config.DefaultSourceLocation, "Source directory; relative paths resolve against the project root")
	rootCmd.PersistentFlags().String("compile-commands", config.DefaultCompileCommands, "Location of compile_commands.json; relative paths resolve against the project root")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Destination directory for RST files (default <project-root>/"+config.DefaultOutputSubdir+")")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Regex patterns of source paths to exclude")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Resolve and log without writing files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Use debug-level logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors; supersedes verbose")

	_ = viper.BindPFlag("project_root", rootCmd.PersistentFlags().Lookup("project-root"))
	_ = viper.BindPFlag("source_location", rootCmd.PersistentFlags().Lookup("source-location"))
	_ = viper.BindPFlag("compile_commands", rootCmd.PersistentFlags().Lookup("compile-commands"))
	_ = viper.BindPFlag("output.directory", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("output.dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config: cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	return orchestrator.Run()
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check project setup",
	Long:  "Verifies that the project root, compile commands manifest, and output directory are usable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking project setup...")
		allPassed := true

		fmt.Print("  Configuration: ")
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("FAILED (%v)\n", err)
			fmt.Println()
			fmt.Println("Cannot continue without a valid configuration.")
			return nil
		}
		fmt.Println("OK")

		fmt.Print("  Project root: ")
		if info, err := os.Stat(cfg.ProjectRoot); err == nil && info.IsDir() {
			fmt.Printf("OK (%s)\n", cfg.ProjectRoot)
		} else {
			fmt.Println("FAILED (not a directory)")
			allPassed = false
		}

		fmt.Print("  Source location: ")
		if info, err := os.Stat(cfg.SourceLocation); err == nil && info.IsDir() {
			fmt.Printf("OK (%s)\n", cfg.SourceLocation)
		} else {
			fmt.Println("FAILED (not a directory)")
			allPassed = false
		}

		fmt.Print("  Compile commands: ")
		loader := manifest.NewLoader(manifest.LoaderOptions{SourceRoot: cfg.SourceLocation})
		if records, err := loader.Load(cfg.CompileCommands); err != nil {
			fmt.Printf("FAILED (%v)\n", err)
			allPassed = false
		} else {
			fmt.Printf("OK (%d records under source root)\n", len(records))
		}

		fmt.Print("  Output directory: ")
		if checkWritable(cfg.Output.Directory) {
			fmt.Printf("OK (%s)\n", cfg.Output.Directory)
		} else {
			fmt.Println("FAILED (not writable)")
			allPassed = false
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkWritable checks that dir can be created and written to
func checkWritable(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".csphinx_write_check")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
