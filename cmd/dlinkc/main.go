// Command dlinkc drives the decode/preprocess/lex pipeline over a set of
// input files from the command line. The CLI surface is a thin,
// ambient collaborator: it parses flags into a config.CompilerOptions and
// hands off to the pipeline façade, which is the core this command wraps.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dlink-lang/dlinkc"
	"github.com/dlink-lang/dlinkc/config"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		threadCount   int
		outputPath    string
		macroArgs     []string
		inputEncoding string
		showVersion   bool
		dumpJSON      bool
	)

	root := &cobra.Command{
		Use:           "dlinkc [flags] <files...>",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
	}
	root.Flags().SortFlags = false
	root.Flags().IntVarP(&threadCount, "threads", "j", 0, "number of worker threads (0 = auto)")
	root.Flags().StringVarP(&outputPath, "output", "o", "", "output path")
	root.Flags().StringArrayVarP(&macroArgs, "define", "D", nil, "define a macro, as name or name=value")
	root.Flags().StringVar(&inputEncoding, "finput-encoding", "", "force the input encoding")
	root.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
	root.Flags().BoolVar(&dumpJSON, "dump-sources", false, "print the JSON-shaped source dump after compiling")

	var fail error
	root.RunE = func(cmd *cobra.Command, inputPaths []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "dlinkc %s\n", version)
			return nil
		}

		inputPaths, err := expandGlobs(inputPaths)
		if err != nil {
			return err
		}

		macros := map[string]string{}
		for _, m := range macroArgs {
			name, value, _ := strings.Cut(m, "=")
			if err := config.ValidateMacroName(name); err != nil {
				return fmt.Errorf("invalid macro %q: %w", m, err)
			}
			macros[name] = value
		}

		params := config.CompilerOptionsParams{
			ThreadCount: threadCount,
			InputPaths:  inputPaths,
			OutputPath:  outputPath,
			Macros:      macros,
		}
		if inputEncoding != "" {
			tag, err := parseEncodingSpelling(inputEncoding)
			if err != nil {
				return err
			}
			params.ForcedEncoding = tag
		}

		opts, err := config.NewCompilerOptions(params)
		if err != nil {
			return err
		}

		pipeline := dlinkc.New(opts)
		ok := pipeline.CompileUntilLexing()
		_ = pipeline.DumpMessages(cmd.ErrOrStderr())
		if dumpJSON {
			raw, err := pipeline.DumpSources()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		}
		if !ok {
			fail = fmt.Errorf("compilation failed")
		}
		return nil
	}

	root.SetArgs(normalizeGCCStyleFlags(args))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if fail != nil {
		return 1
	}
	return 0
}

// expandGlobs replaces each positional argument containing a doublestar
// glob meta-character with its expansion against the working directory,
// preserving argument order. Arguments with no meta-character pass through
// unchanged and unchecked, so a plain path to a nonexistent file is still
// reported later, by the decoder, rather than here.
func expandGlobs(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !doublestar.ValidatePattern(p) || !strings.ContainsAny(p, "*?[{") {
			out = append(out, p)
			continue
		}
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", p, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}

// normalizeGCCStyleFlags rewrites the GCC-style single-dash, multi-letter
// "-finput-encoding" flag (in both its separated and assigned forms) into
// the long-flag form pflag natively recognises. Every other argument passes
// through unchanged.
func normalizeGCCStyleFlags(args []string) []string {
	const name = "-finput-encoding"
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == name && i+1 < len(args):
			out = append(out, "--finput-encoding="+args[i+1])
			i++
		case strings.HasPrefix(arg, name+"="):
			out = append(out, "--"+arg[1:])
		default:
			out = append(out, arg)
		}
	}
	return out
}
