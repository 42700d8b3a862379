package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andreyvit/tstruct"
	"github.com/andreyvit/tstruct/hbase"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode and print encoded column families",
		Long: `Decode ColumnDescriptor structs written back to back (as produced by
encode) and print one per line. Use "-" to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proto, err := rootOpts.protocol()
			if err != nil {
				return err
			}
			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			families, err := decodeFamilies(r, proto)
			if err != nil {
				return err
			}
			for _, cd := range families {
				fmt.Fprintln(cmd.OutOrStdout(), cd)
			}
			return nil
		},
	}
	return cmd
}

func decodeFamilies(r io.Reader, proto tstruct.Protocol) ([]*hbase.ColumnDescriptor, error) {
	br := bufio.NewReader(r)
	p := proto.NewReader(br)
	var out []*hbase.ColumnDescriptor
	for {
		if _, err := br.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		cd, err := hbase.ColumnDescriptorType.ReadNew(p)
		if err != nil {
			return nil, fmt.Errorf("decode family #%d: %w", len(out)+1, err)
		}
		out = append(out, cd)
	}
}
