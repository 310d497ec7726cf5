package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/saltyorg/stockroom/internal/inventory"
)

func parseItemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item ID %q", arg)
	}
	return id, nil
}

func newAddCmd(opts *options) *cobra.Command {
	var (
		name     string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(svc *inventory.Service) error {
				item, err := svc.Add(cmd.Context(), name, quantity)
				if err != nil {
					return fmt.Errorf("failed to add item: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added item %d: %s (quantity %d)\n", item.ID, item.Name, item.Quantity)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Item name")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 0, "Item quantity (greater than 0)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newUpdateCmd(opts *options) *cobra.Command {
	var (
		name     string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the name and quantity of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			return withService(opts, func(svc *inventory.Service) error {
				if err := svc.Update(cmd.Context(), id, name, quantity); err != nil {
					return fmt.Errorf("failed to update item %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated item %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New item name")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 0, "New item quantity (greater than 0)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			return withService(opts, func(svc *inventory.Service) error {
				if err := svc.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete item %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
				return nil
			})
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			return withService(opts, func(svc *inventory.Service) error {
				item, err := svc.Get(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to show item %d: %w", id, err)
				}
				return writeItems(cmd.OutOrStdout(), []inventory.Item{*item})
			})
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(svc *inventory.Service) error {
				items, err := svc.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list items: %w", err)
				}
				if asJSON {
					return writeItemsJSON(cmd.OutOrStdout(), items)
				}
				return writeItems(cmd.OutOrStdout(), items)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print items as JSON")

	return cmd
}

func writeItems(out io.Writer, items []inventory.Item) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQUANTITY")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\n", item.ID, item.Name, item.Quantity)
	}
	return w.Flush()
}

func writeItemsJSON(out io.Writer, items []inventory.Item) error {
	if items == nil {
		items = []inventory.Item{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
