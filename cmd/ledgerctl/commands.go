package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"wexel-ledger/config"
	"wexel-ledger/internal/adapter/pricing"
	pgStorage "wexel-ledger/internal/adapter/storage/postgres"
	"wexel-ledger/internal/service"
	"wexel-ledger/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// env is the shared state of a command run.
type env struct {
	cfg  *config.Config
	log  zerolog.Logger
	pool *pgxpool.Pool
}

func setup(c *cli.Context, withDB bool) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	e := &env{
		cfg: cfg,
		log: logger.New(logger.Options{
			Level:   cfg.Log.Level,
			Pretty:  true,
			Service: "ledgerctl",
			Writer:  os.Stderr,
		}),
	}
	if withDB {
		e.pool, err = pgStorage.NewPool(c.Context, cfg.Database, e.log)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
	}
	return e, nil
}

func (e *env) close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply the ledger schema",
		Action: func(c *cli.Context) error {
			e, err := setup(c, true)
			if err != nil {
				return err
			}
			defer e.close()
			return pgStorage.Migrate(c.Context, e.pool, e.log)
		},
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:      "estimate",
		Usage:     "print the reward accrual of a wexel",
		ArgsUsage: "<wexel-id>",
		Flags: []cli.Flag{
			&cli.TimestampFlag{
				Name:   "at",
				Usage:  "evaluate at this RFC3339 time instead of now",
				Layout: time.RFC3339,
			},
		},
		Action: func(c *cli.Context) error {
			var id int64
			if _, err := fmt.Sscan(c.Args().First(), &id); err != nil || id <= 0 {
				return cli.Exit("wexel id must be a positive integer", 2)
			}
			e, err := setup(c, true)
			if err != nil {
				return err
			}
			defer e.close()

			now := time.Now().UTC()
			if at := c.Timestamp("at"); at != nil {
				now = at.UTC()
			}
			store := pgStorage.NewStore(e.pool, e.log)
			collateral := service.NewCollateralService(store, nil, e.cfg.Ledger.LTVBP, e.log)
			query := service.NewQueryService(store, collateral, e.log)

			acc, err := query.EstimateRewards(c.Context, id, now)
			if err != nil {
				return err
			}
			loan, err := query.EstimateLoan(c.Context, id)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, map[string]any{"accrual": acc, "loan": loan})
		},
	}
}

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "apply chain events from a JSON file through the reconciler",
		ArgsUsage: "<events.json|->",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "stop-on-error", Usage: "abort on the first rejected event"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("events file is required", 2)
			}
			var in io.Reader = os.Stdin
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			events, err := readEvents(in)
			if err != nil {
				return err
			}

			e, err := setup(c, true)
			if err != nil {
				return err
			}
			defer e.close()

			reconciler, err := newReconciler(e)
			if err != nil {
				return err
			}
			res, err := replay(c.Context, reconciler, events, c.Bool("stop-on-error"), e.log)
			if werr := writeJSON(c.App.Writer, res); werr != nil && err == nil {
				err = werr
			}
			if err != nil {
				return err
			}
			if res.Failed > 0 {
				return cli.Exit(fmt.Sprintf("%d event(s) rejected", res.Failed), 1)
			}
			return nil
		},
	}
}

// newReconciler builds the write path over Postgres. Notifications are not
// published and prices are fetched without the Redis cache.
func newReconciler(e *env) (*service.ReconcilerServiceImpl, error) {
	registry, err := pricing.NewRegistry(e.cfg.Boost.Tokens)
	if err != nil {
		return nil, fmt.Errorf("boost tokens: %w", err)
	}
	store := pgStorage.NewStore(e.pool, e.log)
	prices := pricing.NewCoinGeckoClient(e.cfg.Pricing, registry.CoinGeckoIDs(), e.log)

	return service.NewReconcilerService(service.ReconcilerDeps{
		Deposits:    service.NewDepositService(store, nil, e.log),
		Accrual:     service.NewAccrualService(store, nil, e.log),
		Boosts:      service.NewBoostService(store, prices, registry, nil, e.cfg.Pricing.MaxAge, e.log),
		Collateral:  service.NewCollateralService(store, nil, e.cfg.Ledger.LTVBP, e.log),
		Marketplace: service.NewMarketplaceService(store, nil, e.log),
	}, e.log), nil
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:      "token",
		Usage:     "mint an API token for a wallet",
		ArgsUsage: "<wallet>",
		Action: func(c *cli.Context) error {
			wallet := c.Args().First()
			if wallet == "" {
				return cli.Exit("wallet is required", 2)
			}
			e, err := setup(c, false)
			if err != nil {
				return err
			}
			tokens := service.NewJWTTokenService(e.cfg.JWT.Secret, e.cfg.JWT.Expiry, e.cfg.JWT.Issuer)
			token, expires, err := tokens.Generate(wallet)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, map[string]any{
				"token":      token,
				"expires_at": expires.UTC().Format(time.RFC3339),
			})
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
