package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/ben-haim/Nxt2Monitor/internal/nxt"
)

func newBlockTransactionsCmd(opts *nodeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "block-transactions <block-id>",
		Short: "List the transactions of a block, expanding child blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := model.ParseID(args[0]); err != nil {
				return fmt.Errorf("invalid block id %q: %w", args[0], err)
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			catalog, err := client.GetConstants(cmd.Context())
			if err != nil {
				return fmt.Errorf("get constants: %w", err)
			}
			txs, err := client.BlockTransactions(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("block transactions: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHAIN\tTYPE\tSENDER\tRECIPIENT\tAMOUNT\tFEE\tFULL HASH")
			for _, tx := range txs {
				chainName, decimals := chainInfo(catalog, tx.Chain)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					chainName,
					typeName(catalog, tx),
					tx.SenderRS,
					tx.RecipientRS,
					nxt.FormatAmount(tx.AmountNQT, decimals),
					nxt.FormatAmount(tx.FeeNQT, decimals),
					tx.FullHash,
				)
			}
			return w.Flush()
		},
	}
}

func chainInfo(catalog *model.Catalog, id int) (string, int) {
	if ch, ok := catalog.Chain(id); ok {
		return ch.Name, ch.Decimals
	}
	return fmt.Sprintf("chain-%d", id), 8
}

func typeName(catalog *model.Catalog, tx model.Transaction) string {
	if name, ok := catalog.TransactionTypeName(tx.Type, tx.Subtype); ok {
		return name
	}
	return fmt.Sprintf("%d:%d", tx.Type, tx.Subtype)
}
