package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andreyvit/tstruct"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Protocol string // "binary" | "msgpack"
}

func (o *RootOptions) protocol() (tstruct.Protocol, error) {
	return tstruct.ParseProtocol(o.Protocol)
}

// NewRootCommand creates the root command for the coldesc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "coldesc",
		Short: "Encode, decode and store HBase column family descriptors",
		Long: `coldesc converts column family definitions between TOML and the
Thrift struct wire format, and keeps them in a bbolt store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.protocol(); err != nil {
				return err
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log codec and store activity to stderr")
	cmd.PersistentFlags().StringVar(&opts.Protocol, "protocol", tstruct.DefaultProtocol.String(), "wire protocol (binary|msgpack)")

	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))

	return cmd
}
