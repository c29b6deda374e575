// internal/cli/command.go
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"keggmod/internal/cmdutil"
	"keggmod/internal/config"
	"keggmod/internal/version"
)

// Options is everything a conversion run needs from the command line.
type Options struct {
	Input   string // spreadsheet, or "-" for stdin
	KEGGDir string // directory holding the reference table
	Config  config.Config
}

// ErrArgs is returned when the positional arguments are missing or too many.
var ErrArgs = errors.New("improper arguments provided: need <input> and <kegg-dir>, optionally [output-dir]")

// NewCommand builds the root command. Settings are read through v so that
// flags, KEGGMOD_* variables and the --config file merge in one place.
func NewCommand(v *viper.Viper, run func(cmd *cobra.Command, o Options) error) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "keggmod [flags] <Amino_Acids.txt|Vitamins.txt> <kegg-dir> [output-dir]",
		Short: "Convert a pathway spreadsheet into KEGG-style module files",
		Long: `keggmod reads a tab-delimited spreadsheet of biosynthesis pathways and
writes one module file per block into <output-dir>/modules.

Blocks are separated by blank lines. Enzyme definitions come from the
reference table (ko_list.txt) inside <kegg-dir>.`,
		Example: `  keggmod Amino_Acids.txt /data/KEGG
  keggmod --on-missing skip Vitamins.txt /data/KEGG ./out
  KEGGMOD_ENCODING=windows-1252 keggmod export.txt /data/KEGG`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return ErrArgs
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 3 {
				v.Set(config.KeyOutputDir, args[2])
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return cmdutil.Usage(err)
			}
			return run(cmd, Options{Input: args[0], KEGGDir: args[1], Config: cfg})
		},
	}

	d := config.Defaults()
	fs := cmd.Flags()
	fs.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	fs.String("on-missing", d.OnMissing, "unknown enzyme policy: abort | skip")
	fs.String("source", d.Source, "annotation source tag written for every enzyme")
	fs.String("encoding", d.Encoding, "spreadsheet encoding: utf-8 | windows-1252 | latin1")
	fs.String("reference-file", d.ReferenceFile, "reference table name inside <kegg-dir>")
	fs.BoolP("quiet", "q", false, "only report errors")
	fs.Bool("verbose", false, "debug logging")

	for key, flag := range map[string]string{
		config.KeyOnMissing:     "on-missing",
		config.KeySource:        "source",
		config.KeyEncoding:      "encoding",
		config.KeyReferenceFile: "reference-file",
		config.KeyQuiet:         "quiet",
		config.KeyVerbose:       "verbose",
	} {
		// Lookup cannot fail: every flag was registered just above.
		_ = v.BindPFlag(key, fs.Lookup(flag))
	}

	cmd.SetVersionTemplate("keggmod version {{.Version}}\n")
	return cmd
}
