package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andreyvit/tstruct"
	"github.com/andreyvit/tstruct/hbase"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "encode <families.toml>",
		Short: "Encode column families from a TOML file",
		Long: `Encode every [[family]] table of a TOML file as a ColumnDescriptor
struct, back to back, to stdout or the file given by --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proto, err := rootOpts.protocol()
			if err != nil {
				return err
			}
			families, err := loadFamilies(args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				return encodeFamilies(cmd.OutOrStdout(), proto, families)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := encodeFamilies(f, proto, families); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d families to %s\n", len(families), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

func encodeFamilies(w io.Writer, proto tstruct.Protocol, families []*hbase.ColumnDescriptor) error {
	bw := bufio.NewWriter(w)
	p := proto.NewWriter(bw)
	for _, cd := range families {
		if err := cd.Write(p); err != nil {
			return fmt.Errorf("encode %s: %w", cd.Name(), err)
		}
	}
	return p.Flush()
}
