// Package cmd holds the nxt-admin commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ben-haim/Nxt2Monitor/internal/config"
	"github.com/ben-haim/Nxt2Monitor/internal/metrics"
	"github.com/ben-haim/Nxt2Monitor/internal/nxt"
)

type nodeOptions struct {
	connect              string
	apiPort              int
	adminPassword        string
	useSSL               bool
	acceptAnyCertificate bool
	allowNameMismatch    bool
	timeout              time.Duration
	verbose              bool
}

func (o *nodeOptions) client() (*nxt.Client, error) {
	conns, err := config.ResolveConnections([]string{o.connect}, o.apiPort, o.adminPassword)
	if err != nil {
		return nil, err
	}
	conn := conns[0]

	logger := zap.NewNop()
	if o.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	return nxt.NewClient(nxt.ClientConfig{
		Host:                 conn.Host,
		Port:                 conn.Port,
		UseSSL:               o.useSSL,
		AdminPassword:        conn.AdminPassword,
		AcceptAnyCertificate: o.acceptAnyCertificate,
		AllowNameMismatch:    o.allowNameMismatch,
		CallTimeout:          o.timeout,
		FetchTimeout:         o.timeout,
	}, metrics.NewAPIClient(conn.Address()), logger)
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &nodeOptions{}

	root := &cobra.Command{
		Use:           "nxt-admin",
		Short:         "Admin actions against an Nxt node",
		Long:          `Blacklist or add peers, inspect block transactions and show the node status through the node HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.connect, "connect", "c", "", "server as host[:port][;adminPassword]")
	flags.IntVar(&opts.apiPort, "api-port", config.DefaultAPIPort, "node API port when --connect names none")
	flags.StringVar(&opts.adminPassword, "admin-password", os.Getenv("NXT_MONITOR_ADMIN_PASSWORD"), "node admin password")
	flags.BoolVar(&opts.useSSL, "use-ssl", false, "use https for non-local servers")
	flags.BoolVar(&opts.acceptAnyCertificate, "accept-any-certificate", false, "skip server certificate verification")
	flags.BoolVar(&opts.allowNameMismatch, "allow-name-mismatch", false, "accept certificates issued for another host name")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests")

	root.AddCommand(
		newBlacklistPeerCmd(opts),
		newAddPeerCmd(opts),
		newBlockTransactionsCmd(opts),
		newStatusCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
