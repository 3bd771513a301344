package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DeusData/loc-analyzer/internal/ignore"
	"github.com/DeusData/loc-analyzer/internal/lang"
	"github.com/DeusData/loc-analyzer/internal/report"
	"github.com/DeusData/loc-analyzer/internal/walker"
)

// newRootCmd builds the root command. in supplies the interactive
// target-directory prompt when no positional argument is given; out
// receives all regular output (configuration, progress, report).
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		ignoreDirs  []string
		ignoreFiles []string
		ignoreExts  []string
	)

	cmd := &cobra.Command{
		Use:   "loc-analyzer [target-dir]",
		Short: "Count lines of code per language in a directory tree",
		Long: `loc-analyzer walks a directory tree, classifies files by extension,
and reports non-blank, non-comment line counts per language.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			if target == "" {
				fmt.Fprint(out, "Enter the target directory path to analyze: ")
				line, err := bufio.NewReader(in).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read target directory: %w", err)
				}
				target = strings.TrimSpace(line)
			}

			info, err := os.Stat(target)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("the specified path %q is not a valid directory or does not exist", target)
			}

			rules := ignore.Default()
			rules.AddDirs(ignoreDirs)
			rules.AddFiles(ignoreFiles)
			rules.AddExts(ignoreExts)

			printConfig(out, target, rules)

			summary, err := walker.Analyze(cmd.Context(), target, rules, out)
			if err != nil {
				return err
			}
			report.Render(out, summary)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ignoreDirs, "ignore-dirs", nil,
		"additional directory names to ignore (repeatable)")
	cmd.Flags().StringArrayVar(&ignoreFiles, "ignore-files", nil,
		"additional exact file names to ignore (repeatable)")
	cmd.Flags().StringArrayVar(&ignoreExts, "ignore-exts", nil,
		"additional file extensions to ignore (repeatable)")

	return cmd
}

// printConfig dumps the effective configuration and the full language
// registry before the walk starts.
func printConfig(out io.Writer, target string, rules *ignore.Rules) {
	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	fmt.Fprintln(out, "\n--- Configuration ---")
	fmt.Fprintf(out, "Target Directory: %s\n", abs)
	fmt.Fprintf(out, "Ignoring Directories: %s\n", strings.Join(rules.SortedDirs(), ", "))
	fmt.Fprintf(out, "Ignoring Files: %s\n", strings.Join(rules.SortedFiles(), ", "))
	fmt.Fprintf(out, "Ignoring Extensions: %s\n", strings.Join(rules.SortedExts(), ", "))
	fmt.Fprintln(out, "Recognized Languages & Comment Prefixes:")
	for _, def := range lang.All() {
		prefix := def.CommentPrefix
		if prefix == "" {
			prefix = "N/A"
		}
		fmt.Fprintf(out, "  %s: %s (Comment: '%s')\n", strings.Join(def.Extensions, ", "), def.Name, prefix)
	}
	fmt.Fprintln(out, "---------------------")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Starting analysis of directory: %s\n\n", target)
}

// Execute runs the root command against os.Stdin/os.Stdout.
func Execute(version string) error {
	cmd := newRootCmd(os.Stdin, os.Stdout)
	cmd.Version = version
	return cmd.ExecuteContext(context.Background())
}
