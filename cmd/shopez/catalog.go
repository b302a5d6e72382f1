package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopez/shopez/internal/catalog"
)

type catalogFlags struct {
	file     string
	currency string
	locale   string
}

func newCatalogCmd() *cobra.Command {
	flags := &catalogFlags{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the product catalog",
	}
	cmd.PersistentFlags().StringVar(&flags.file, "file", "", "catalog YAML file (defaults to the built-in catalog)")
	cmd.PersistentFlags().StringVar(&flags.currency, "currency", "INR", "ISO 4217 currency code for prices")
	cmd.PersistentFlags().StringVar(&flags.locale, "locale", "en-IN", "BCP 47 locale for prices")

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := flags.load()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cat.All())
			}
			prices, err := catalog.NewPriceFormatter(flags.currency, flags.locale)
			if err != nil {
				return err
			}
			return writeProducts(cmd.OutOrStdout(), cat.All(), prices)
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "print products as JSON with minor-unit prices")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := flags.load()
			if err != nil {
				return err
			}
			prices, err := catalog.NewPriceFormatter(flags.currency, flags.locale)
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), cat.Stats(), prices)
		},
	}

	cmd.AddCommand(list, stats)
	return cmd
}

func (f *catalogFlags) load() (*catalog.Catalog, error) {
	if f.file == "" {
		return catalog.Default()
	}
	file, err := os.Open(f.file)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return catalog.Load(file)
}

func writeProducts(out io.Writer, products []catalog.Product, prices *catalog.PriceFormatter) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\n", p.ID, p.Icon, p.Name, prices.Format(p.Price))
	}
	return tw.Flush()
}

func writeStats(out io.Writer, stats catalog.Stats, prices *catalog.PriceFormatter) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "products\t%d\n", stats.Count)
	fmt.Fprintf(tw, "total\t%s\n", prices.Format(stats.Total))
	fmt.Fprintf(tw, "average\t%s\n", prices.Format(stats.Average))
	fmt.Fprintf(tw, "min\t%s\n", prices.Format(stats.Min))
	fmt.Fprintf(tw, "max\t%s\n", prices.Format(stats.Max))
	return tw.Flush()
}
