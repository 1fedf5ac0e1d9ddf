package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wichananm65/plant-shop-storefront/internal/catalog"
	"github.com/wichananm65/plant-shop-storefront/internal/config"
	"github.com/wichananm65/plant-shop-storefront/internal/money"
)

var (
	catalogFile string
	catalogJSON bool
	catalogHTML bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch, translate and print the product grid",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		logger := mustLogger(cfg)
		defer logger.Sync()

		var client catalog.Client = catalog.NewHTTPClient(cfg.CatalogBaseURL, cfg.CatalogTimeout)
		if catalogFile != "" {
			static, err := readProducts(catalogFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			client = static
		}

		svc := catalog.NewService(client, nil, cfg.CatalogLimit, logger)
		snap := svc.Refresh(context.Background())

		switch {
		case catalogHTML:
			html, err := catalog.RenderHTML(svc.View())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(html)
		case catalogJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(snap.Products)
		default:
			printProducts(snap)
		}
		if snap.Err != nil {
			os.Exit(1)
		}
	},
}

func readProducts(path string) (catalog.StaticClient, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return catalog.StaticClient{}, fmt.Errorf("read %s: %w", path, err)
	}
	var products []catalog.RawProduct
	if err := json.Unmarshal(b, &products); err != nil {
		return catalog.StaticClient{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return catalog.StaticClient{Products: products}, nil
}

func printProducts(snap catalog.Snapshot) {
	if snap.Err != nil {
		fmt.Println(catalog.ErrorMessage)
		return
	}
	if len(snap.Products) == 0 {
		fmt.Println(catalog.EmptyMessage)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range snap.Products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, money.FormatBRL(p.Price), p.Category, catalog.Stars(p.Rating.Rate))
	}
	w.Flush()
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "read products from a JSON file instead of the catalog API")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "print translated products as JSON")
	catalogCmd.Flags().BoolVar(&catalogHTML, "html", false, "print the rendered product grid")
	rootCmd.AddCommand(catalogCmd)
}
