package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathew-horner/elf/internal/elffile"
	"github.com/mathew-horner/elf/internal/render"
	"github.com/mathew-horner/elf/internal/utils"
)

var (
	// Version information (set via ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Exit codes:
//
//	0 - header decoded successfully
//	1 - the input is not a valid ELF header
//	2 - invalid arguments or configuration error
const (
	exitDecodeFailure = 1
	exitUsageError    = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var decodeErr *elffile.DecodeError
		if errors.As(err, &decodeErr) {
			os.Exit(exitDecodeFailure)
		}
		os.Exit(exitUsageError)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elf-inspect",
		Short: "Decode and display ELF file headers",
		Long: `elf-inspect reads the identification bytes and file header at the start of
an ELF object file, validates them against the format's fixed rules, and
prints the decoded fields.

Only the fixed-size header is parsed: program headers, section headers,
symbols and relocations are out of scope.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().String("log-level", "", "Set log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "Set log format (text, json)")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newInspectCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode the ELF header of a file",
		Long: `Decode the fixed-size ELF header of the given file and print every field.

The file's word size and endianness are read from its own identification
bytes; all later multi-byte fields are interpreted in the discovered byte
order. Decoding stops at the first field that violates the format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (text, json)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "elf-inspect version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", buildDate)
		},
	}
}

// runInspect opens the file, decodes its header, and renders the result.
func runInspect(cmd *cobra.Command, path, outputFormat string) error {
	configFile, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var config *utils.Config
	var err error

	if configFile != "" {
		config, err = utils.LoadConfigFromFile(configFile)
	} else {
		config, err = utils.LoadDefaultConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags override the loaded configuration.
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if logFormat != "" {
		config.LogFormat = logFormat
	}

	loggerConfig := utils.LoggerConfig{
		Level:  utils.ParseLogLevel(config.LogLevel),
		Format: utils.ParseLogFormat(config.LogFormat),
	}
	if verbose {
		loggerConfig.Level = utils.LogLevelDebug
	}
	logger := utils.NewLogger(loggerConfig)

	// The flag overrides the configured default.
	if outputFormat == "" {
		outputFormat = config.OutputFormat
	}
	if !isValidOutputFormat(outputFormat) {
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	logger.WithComponent("elf-inspect").Debugf("Decoding ELF header of: %s", path)

	header, err := elffile.DecodeHeader(elffile.NewReader(bufio.NewReader(file)))
	if err != nil {
		var decodeErr *elffile.DecodeError
		if errors.As(err, &decodeErr) {
			logger.WithComponent("elf-inspect").
				WithField("kind", string(decodeErr.Kind)).
				Debugf("Decode failed: %v", decodeErr)
		}
		return err
	}

	if !header.VersionsAgree() {
		logger.WithComponent("elf-inspect").
			Warnf("Version field 0x%x disagrees with the identifier version byte", header.Version)
	}

	switch strings.ToLower(outputFormat) {
	case "json":
		return render.JSON(cmd.OutOrStdout(), header)
	default:
		return render.Text(cmd.OutOrStdout(), header)
	}
}

// isValidOutputFormat reports whether format names a supported renderer.
func isValidOutputFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "json":
		return true
	}
	return false
}
