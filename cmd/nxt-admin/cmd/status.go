package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

func newStatusCmd(opts *nodeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the chain head and connected peer count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			catalog, err := client.GetConstants(cmd.Context())
			if err != nil {
				return fmt.Errorf("get constants: %w", err)
			}
			blocks, err := client.GetBlocks(cmd.Context(), 0, 0)
			if err != nil {
				return fmt.Errorf("get blocks: %w", err)
			}
			peers, err := client.GetPeers(cmd.Context(), model.PeerConnected)
			if err != nil {
				return fmt.Errorf("get peers: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "server: %s\n", client.Endpoint())
			if len(blocks) > 0 {
				head := blocks[0]
				fmt.Fprintf(out, "head: %d %s %s\n",
					head.Height, model.FormatID(head.ID),
					catalog.BlockTime(head.Timestamp).Format(time.RFC3339))
			} else {
				fmt.Fprintln(out, "head: none")
			}
			fmt.Fprintf(out, "connected peers: %d\n", len(peers))
			return nil
		},
	}
}
