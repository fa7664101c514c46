package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBlacklistPeerCmd(opts *nodeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "blacklist-peer <address>",
		Short: "Blacklist a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			if err := client.BlacklistPeer(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("blacklist peer %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "peer %s blacklisted\n", args[0])
			return nil
		},
	}
}

func newAddPeerCmd(opts *nodeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-peer <address>",
		Short: "Add a peer and connect to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			peer, err := client.AddPeer(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("add peer %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "peer %s added: state=%s version=%s\n",
				peer.DisplayAddress(), peer.State, versionOrUnknown(peer.Version))
			return nil
		},
	}
}

func versionOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
