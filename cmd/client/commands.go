package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/freelance-tracker/internal/apiclient"
	"github.com/sbilibin2017/freelance-tracker/internal/clientconfig"
	"github.com/sbilibin2017/freelance-tracker/internal/events"
	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/shop"
)

var errLoginRequired = errors.New("login required: run `client login <email>` first")

// app is the state shared by the commands once the config is loaded.
type app struct {
	deps       *deps
	configPath string
	store      *clientconfig.Store
}

func newRootCmd(d *deps) *cobra.Command {
	a := &app{deps: d}

	rootCmd := &cobra.Command{
		Use:           "client",
		Short:         "Terminal client of the freelance tracker",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", buildVersion, buildCommit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	rootCmd.SetOut(d.stdout)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the client config file (default is the user config directory)")

	loginCmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in with an email, creating the user on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.apiClient().Login(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			_, _ = fmt.Fprintf(a.deps.stdout, "Logged in as %s\n", user.Email)
			return nil
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.apiClient().Logout(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(a.deps.stdout, "Logged out")
			return nil
		},
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show hours, clients without recent work and recent activity",
		Long: `Show the dashboard of the logged in user.

Keyboard shortcuts:
  - r: Refresh
  - q: Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.apiClient()
			if !client.LoggedIn() {
				return errLoginRequired
			}
			return a.deps.runDashboard(client)
		},
	}

	shopCmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the demo shop and check out",
		Long: `Run the demo shop: browse products, edit the cart and go through
shipping, payment and confirmation. No real payment is processed.

The cart is kept in the store selected by cart_store (file, redis or memory).
Placed orders are announced through order_publisher (none, kafka or amqp).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShop(cmd.Context())
		},
	}

	rootCmd.AddCommand(loginCmd, logoutCmd, dashboardCmd, shopCmd)
	return rootCmd
}

// setup loads the config, validates it and sends logs to the log file.
func (a *app) setup() error {
	if a.configPath == "" {
		path, err := a.deps.configPath()
		if err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
		a.configPath = path
	}

	store, err := clientconfig.Open(a.configPath)
	if err != nil {
		return err
	}
	cfg := store.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.store = store

	logPath := store.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := logger.InitializeToFile(cfg.LogLevel, logPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) apiClient() *apiclient.Client {
	return apiclient.New(a.store.Config().BaseURL, a.store,
		apiclient.WithOnUnauthorized(func() {
			logger.Log.Warnw("server rejected the stored email, login required")
		}),
	)
}

func (a *app) runShop(ctx context.Context) error {
	cfg := a.store.Config()

	cartStore, closeStore, err := a.cartStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cart, err := shop.LoadCart(ctx, cartStore)
	if err != nil {
		return err
	}

	opts := []shop.CheckoutOption{}
	publisher, err := newPublisher(cfg)
	if err != nil {
		// the shop works without events
		logger.Log.Errorw("order publisher unavailable", "publisher", cfg.OrderPublisher, "error", err)
	}
	if publisher != nil {
		defer publisher.Close()
		opts = append(opts, shop.WithPublisher(publisher))
	}

	return a.deps.runShop(shop.NewCheckout(cart, opts...))
}

func (a *app) cartStore(cfg clientconfig.Config) (shop.CartStore, func(), error) {
	switch cfg.CartStore {
	case clientconfig.CartStoreMemory:
		return shop.NewMemoryStore(), func() {}, nil
	case clientconfig.CartStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		return shop.NewRedisStore(rdb, cfg.Session, 0), func() { _ = rdb.Close() }, nil
	case clientconfig.CartStoreFile:
		return shop.NewFileStore(a.store.CartPath()), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cart store %q", cfg.CartStore)
	}
}

type orderPublisher interface {
	shop.OrderPublisher
	io.Closer
}

func newPublisher(cfg clientconfig.Config) (orderPublisher, error) {
	switch cfg.OrderPublisher {
	case clientconfig.PublisherKafka:
		return events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)), nil
	case clientconfig.PublisherAMQP:
		p, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return nil, err
		}
		return p, nil
	case clientconfig.PublisherNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown order publisher %q", strings.TrimSpace(cfg.OrderPublisher))
	}
}
