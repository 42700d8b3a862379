package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andreyvit/tstruct"
	"github.com/andreyvit/tstruct/hbase"
)

// NewStoreCommand creates the store command group.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep column families in a bbolt database",
	}
	cmd.AddCommand(newStorePutCommand(rootOpts))
	cmd.AddCommand(newStoreGetCommand(rootOpts))
	cmd.AddCommand(newStoreListCommand(rootOpts))
	cmd.AddCommand(newStoreDeleteCommand(rootOpts))
	return cmd
}

func openFamilies(rootOpts *RootOptions, path string) (*tstruct.Store, *tstruct.Collection[hbase.ColumnDescriptor], error) {
	proto, err := rootOpts.protocol()
	if err != nil {
		return nil, nil, err
	}
	s, err := tstruct.OpenStore(path, tstruct.StoreOptions{
		Logger:   slog.Default(),
		Protocol: proto,
	})
	if err != nil {
		return nil, nil, err
	}
	return s, tstruct.NewCollection(s, hbase.ColumnDescriptorType), nil
}

func newStorePutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "put <db> <families.toml>",
		Short: "Store every family of a TOML file, keyed by name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := loadFamilies(args[1])
			if err != nil {
				return err
			}
			s, coll, err := openFamilies(rootOpts, args[0])
			if err != nil {
				return err
			}
			defer s.Close()
			for _, cd := range families {
				if err := coll.Put(cd.Name(), cd); err != nil {
					return fmt.Errorf("put %s: %w", cd.Name(), err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d families\n", len(families))
			return nil
		},
	}
}

func newStoreGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <db> <family>",
		Short: "Print one stored family",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, coll, err := openFamilies(rootOpts, args[0])
			if err != nil {
				return err
			}
			defer s.Close()
			cd, err := coll.Get([]byte(args[1]))
			if err != nil {
				return err
			}
			if cd == nil {
				return fmt.Errorf("family %q not found", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), cd)
			return nil
		},
	}
}

func newStoreListCommand(rootOpts *RootOptions) *cobra.Command {
	var sorted bool
	var prefix string
	cmd := &cobra.Command{
		Use:   "list <db>",
		Short: "Print stored families",
		Long: `Print stored families in key order, or with --sorted in descriptor
order (attribute by attribute, as Compare defines it).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, coll, err := openFamilies(rootOpts, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			var families []*hbase.ColumnDescriptor
			switch {
			case sorted:
				families, err = coll.Sorted()
			default:
				err = coll.Scan([]byte(prefix), func(key []byte, cd *hbase.ColumnDescriptor) bool {
					families = append(families, cd)
					return true
				})
			}
			if err != nil {
				return err
			}
			for _, cd := range families {
				fmt.Fprintln(cmd.OutOrStdout(), cd)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order by descriptor instead of key")
	cmd.Flags().StringVar(&prefix, "prefix", "", "only families whose name starts with this prefix")
	return cmd
}

func newStoreDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <db> <family>",
		Short: "Remove a stored family",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, coll, err := openFamilies(rootOpts, args[0])
			if err != nil {
				return err
			}
			defer s.Close()
			found, err := coll.Delete([]byte(args[1]))
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("family %q not found", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[1])
			return nil
		},
	}
}
