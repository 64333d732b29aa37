package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finsight/internal/analytics"
	"finsight/internal/models"
	"finsight/internal/parser"
	"finsight/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parse runs the statement extractor over a local file without a database,
// printing the transactions it finds and optional summaries.
func main() {
	var password string
	var byCategory bool
	var byDay bool

	rootCmd := &cobra.Command{
		Use:          "parse <statement-file>",
		Short:        "Parse a bank statement into categorized transactions",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], password, byCategory, byDay)
		},
	}

	rootCmd.Flags().StringVarP(&password, "password", "p", "", "PDF password")
	rootCmd.Flags().BoolVar(&byCategory, "categories", false, "print debit totals by category")
	rootCmd.Flags().BoolVar(&byDay, "daily", false, "print daily credit/debit totals")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path, password string, byCategory, byDay bool) error {
	text, err := readStatement(path, password)
	if err != nil {
		return err
	}

	result := parser.NewExtractor(nil).Extract(text)

	for _, tx := range result.Transactions {
		fmt.Printf("%s  %-6s %12s  %-14s %s\n",
			tx.Date.Format("2006-01-02"), tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.Description)
	}
	fmt.Printf("\n%d transactions (%s to %s), %d unparseable lines dropped\n",
		len(result.Transactions),
		result.StartDate.Format("2006-01-02"), result.EndDate.Format("2006-01-02"),
		len(result.Dropped))

	txs := make([]models.Transaction, len(result.Transactions))
	for i, ptx := range result.Transactions {
		txs[i] = models.Transaction{
			Date:        ptx.Date,
			Description: ptx.Description,
			Type:        ptx.Type,
			Amount:      ptx.Amount,
			Category:    ptx.Category,
		}
	}

	if byDay {
		fmt.Println("\nDaily totals:")
		for _, row := range analytics.Daily(txs) {
			fmt.Printf("%s  credit %12s  debit %12s  (%d)\n",
				row.Date, row.TotalCredit.StringFixed(2), row.TotalDebit.StringFixed(2), row.Count)
		}
	}

	if byCategory {
		fmt.Println("\nDebit totals by category:")
		for _, row := range analytics.ByCategory(txs) {
			fmt.Printf("%-14s %12s  (%d)\n", row.Category, row.TotalAmount.StringFixed(2), row.Count)
		}
	}

	return nil
}

func readStatement(path, password string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		blob, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return service.NewPDFService(zap.NewNop()).ExtractText(context.Background(), blob, password)
	}

	// Anything else is treated as already-extracted plain text.
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
