// Package main runs the node monitor daemon.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/ben-haim/Nxt2Monitor/internal/config"
	"github.com/ben-haim/Nxt2Monitor/internal/metrics"
	"github.com/ben-haim/Nxt2Monitor/internal/nxt"
	"github.com/ben-haim/Nxt2Monitor/internal/presenter"
	"github.com/ben-haim/Nxt2Monitor/internal/repository/clickhouse"
	"github.com/ben-haim/Nxt2Monitor/internal/service/archive"
	"github.com/ben-haim/Nxt2Monitor/internal/service/monitor"
)

type options struct {
	ConfigFile string `long:"config" env:"NXT_MONITOR_CONFIG" no-ini:"true" description:"ini file with connect, apiport, adminpw and usessl options"`

	Connect              []string      `long:"connect" ini-name:"connect" env:"NXT_MONITOR_CONNECT" env-delim:"," description:"server as host[:port][;adminPassword], may be repeated"`
	APIPort              int           `long:"api-port" ini-name:"apiport" env:"NXT_MONITOR_API_PORT" default:"7876" description:"default node API port"`
	AdminPassword        string        `long:"admin-password" ini-name:"adminpw" env:"NXT_MONITOR_ADMIN_PASSWORD" description:"default node admin password"`
	UseSSL               bool          `long:"use-ssl" ini-name:"usessl" env:"NXT_MONITOR_USE_SSL" description:"use https for non-local servers"`
	AcceptAnyCertificate bool          `long:"accept-any-certificate" env:"NXT_MONITOR_ACCEPT_ANY_CERTIFICATE" description:"skip server certificate verification"`
	AllowNameMismatch    bool          `long:"allow-name-mismatch" env:"NXT_MONITOR_ALLOW_NAME_MISMATCH" description:"accept certificates issued for another host name"`
	FetchRPS             int           `long:"fetch-rps" env:"NXT_MONITOR_FETCH_RPS" default:"20" description:"follow-up fetches per second, 0 is unlimited"`
	BlockWindow          int           `long:"block-window" env:"NXT_MONITOR_BLOCK_WINDOW" default:"25" description:"recent blocks loaded at session start"`
	WaitTimeout          int           `long:"wait-timeout" env:"NXT_MONITOR_WAIT_TIMEOUT" default:"60" description:"event wait timeout in seconds"`
	ReconnectDelay       time.Duration `long:"reconnect-delay" env:"NXT_MONITOR_RECONNECT_DELAY" default:"0s" description:"delay before starting a new session, 0 exits when a session ends"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"NXT_MONITOR_CLICKHOUSE_DSN" description:"archive applied changes to ClickHouse"`
	GRPCAddr      string `long:"grpc-addr" env:"NXT_MONITOR_GRPC_ADDR" default:":8000" description:"gRPC health address"`
	RestAddr      string `long:"rest-addr" env:"NXT_MONITOR_REST_ADDR" default:":8001" description:"REST health and metrics address"`
	LogProduction bool   `long:"log-production" env:"NXT_MONITOR_LOG_PRODUCTION" description:"json logs"`
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			if ferr.Type == flags.ErrHelp {
				return
			}
			// already printed by the parser
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(opts.LogProduction)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error("monitor stopped", zap.Error(err))
		os.Exit(1)
	}
}

// parseOptions reads the optional ini file first so command line and
// environment values override it.
func parseOptions(args []string) (options, error) {
	var pre struct {
		ConfigFile string `long:"config" env:"NXT_MONITOR_CONFIG"`
	}
	// Errors surface from the full parse below.
	_, _ = flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args)

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if pre.ConfigFile != "" {
		if err := config.LoadFile(pre.ConfigFile, parser); err != nil {
			return options{}, err
		}
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	conns, err := config.ResolveConnections(opts.Connect, opts.APIPort, opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("resolve connections: %w", err)
	}

	var repo *clickhouse.Repository
	if opts.ClickhouseDSN != "" {
		repo, err = clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewArchiveRepository())
		if err != nil {
			return fmt.Errorf("init archive repository: %w", err)
		}
		defer func() {
			if closeErr := repo.Close(); closeErr != nil {
				logger.Error("close archive repository", zap.Error(closeErr))
			}
		}()
	}

	sup, err := newSupervisor(conns, newSessionFactory(opts, repo, logger), opts.ReconnectDelay, logger.Named("supervisor"))
	if err != nil {
		return err
	}

	serveCtx, cancelServe := context.WithCancel(ctx)
	defer cancelServe()
	srv, err := startServers(serveCtx, opts.GRPCAddr, opts.RestAddr, sup, logger.Named("servers"))
	if err != nil {
		return err
	}

	err = sup.Run(ctx)
	cancelServe()
	srv.wait()
	return err
}

func newSessionFactory(opts options, repo *clickhouse.Repository, logger *zap.Logger) sessionFactory {
	return func(ctx context.Context, conn config.Connection) (session, func(), error) {
		server := conn.Address()
		sessionLogger := logger.With(zap.String("server", server))

		client, err := nxt.NewClient(nxt.ClientConfig{
			Host:                 conn.Host,
			Port:                 conn.Port,
			UseSSL:               opts.UseSSL,
			AdminPassword:        conn.AdminPassword,
			AcceptAnyCertificate: opts.AcceptAnyCertificate,
			AllowNameMismatch:    opts.AllowNameMismatch,
			FetchRPS:             opts.FetchRPS,
		}, metrics.NewAPIClient(server), sessionLogger.Named("nxt"))
		if err != nil {
			return nil, nil, fmt.Errorf("init node client: %w", err)
		}

		presenters := presenter.Fanout{presenter.NewLog(sessionLogger.Named("presenter"))}
		release := func() {}
		if repo != nil {
			sink := archive.NewSink(repo, server, sessionLogger.Named("archive"))
			sink.Start(ctx)
			presenters = append(presenters, sink)
			release = sink.Stop
		}

		loop, err := monitor.NewSyncLoop(client, presenters, metrics.NewSyncLoop(server), sessionLogger.Named("syncLoop"), monitor.Config{
			BlockWindow: opts.BlockWindow,
			WaitTimeout: opts.WaitTimeout,
		})
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("init sync loop: %w", err)
		}
		return loop, release, nil
	}
}
