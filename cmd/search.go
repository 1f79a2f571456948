package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/factor-cli/internal/catalog"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Rank emission factor catalog entries against a query",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		ranked := catalog.Search(entries, strings.Join(args, " "))
		if searchLimit > 0 && len(ranked) > searchLimit {
			ranked = ranked[:searchLimit]
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tSCORE")
		for _, r := range ranked {
			fmt.Fprintf(w, "%s\t%s\t%d\n", r.Code, r.Name, r.Score)
		}
		return w.Flush()
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum results to print (0 = all)")
	rootCmd.AddCommand(searchCmd)
}
