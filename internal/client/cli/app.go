package cli

import (
	"context"
	"fmt"
	"time"

	urcli "github.com/urfave/cli/v2"
)

// ConnectFunc создает Cli по глобальным флагам команды
type ConnectFunc func(c *urcli.Context) (*Cli, error)

// NewApp собирает приложение stockctl
func NewApp(version string, connect ConnectFunc) *urcli.App {
	return &urcli.App{
		Name:    "stockctl",
		Usage:   "Stockle inventory API operator tool",
		Version: version,
		Flags:   globalFlags(),
		Commands: []*urcli.Command{
			{
				Name:   "status",
				Usage:  "Check whether the inventory API is reachable",
				Action: action(connect, func(ctx context.Context, cl *Cli, c *urcli.Context) error { return cl.RunStatus(ctx) }),
			},
			{
				Name:   "login",
				Usage:  "Verify operator credentials",
				Action: action(connect, func(ctx context.Context, cl *Cli, c *urcli.Context) error { return cl.RunLogin(ctx, c.String("user")) }),
			},
			{
				Name:      "stock",
				Usage:     "Search products by name, barcode, category or quantity",
				ArgsUsage: "<query>",
				Action: action(connect, func(ctx context.Context, cl *Cli, c *urcli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one query. Usage: stockctl stock <query>")
					}
					return cl.RunStock(ctx, c.Args().First())
				}),
			},
			{
				Name:   "categories",
				Usage:  "List product categories",
				Action: action(connect, func(ctx context.Context, cl *Cli, c *urcli.Context) error { return cl.RunCategories(ctx) }),
			},
			{
				Name:      "set-stock",
				Usage:     "Overwrite stock levels",
				ArgsUsage: "<barcode>=<quantity> ...",
				Action: action(connect, func(ctx context.Context, cl *Cli, c *urcli.Context) error {
					return cl.RunSetStock(ctx, c.String("user"), c.Args().Slice())
				}),
			},
			{
				Name:   "sync-now",
				Usage:  "Ask all tills to synchronize immediately",
				Action: action(connect, func(ctx context.Context, cl *Cli, c *urcli.Context) error { return cl.RunSyncNow(ctx, c.String("user")) }),
			},
			{
				Name:   "passwd",
				Usage:  "Change the operator password",
				Action: action(connect, func(ctx context.Context, cl *Cli, c *urcli.Context) error { return cl.RunChangePassword(ctx, c.String("user")) }),
			},
		},
	}
}

func globalFlags() []urcli.Flag {
	return []urcli.Flag{
		&urcli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Inventory API URL",
			EnvVars: []string{"STOCKLE_SERVER"},
			Value:   "http://localhost:5000",
		},
		&urcli.StringFlag{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "Operator username (prompted when empty)",
			EnvVars: []string{"STOCKLE_USER"},
		},
		&urcli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-request timeout",
			Value: 30 * time.Second,
		},
		&urcli.IntFlag{
			Name:  "retries",
			Usage: "Retries while the API is unreachable (delays 1s, 2s, 4s ... 32s)",
			Value: 5,
		},
	}
}

// action оборачивает команду: создает Cli и передает контекст приложения
func action(connect ConnectFunc, run func(ctx context.Context, cl *Cli, c *urcli.Context) error) urcli.ActionFunc {
	return func(c *urcli.Context) error {
		cl, err := connect(c)
		if err != nil {
			return err
		}
		return run(c.Context, cl, c)
	}
}
