// ddnet-lb - precomputed leaderboard and profile artifacts from a DDNet SQLite dump
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GumbaTW/DDNet-LB/internal/config"
	"github.com/GumbaTW/DDNet-LB/internal/database"
	fxmodules "github.com/GumbaTW/DDNet-LB/internal/fx"
	"github.com/GumbaTW/DDNet-LB/internal/logger"
	"github.com/GumbaTW/DDNet-LB/internal/server"
	"github.com/GumbaTW/DDNet-LB/internal/service"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "leaderboard":
		cmdLeaderboard(os.Args[2:])
	case "maps":
		cmdMaps(os.Args[2:])
	case "profiles":
		cmdProfiles(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	case "initdb":
		cmdInitDB(os.Args[2:])
	case "version":
		fmt.Printf("ddnet-lb %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: ddnet-lb <command> [options] [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  leaderboard <db> [-o leaderboard.json] [--top N]")
	fmt.Println("                                      Generate the global leaderboard")
	fmt.Println("  maps <db> -o <file>                 Export all maps per category")
	fmt.Println("  profiles <db> --players-file <leaderboard.json> [-o profiles]")
	fmt.Println("                                      Generate one profile file per player")
	fmt.Println("  serve [--addr :8080] [--dir public] Serve generated artifacts over HTTP")
	fmt.Println("  initdb <db>                         Create an empty maps/race/teamrace schema")
	fmt.Println("  version                             Show version")
}

func cmdLeaderboard(args []string) {
	fs := flag.NewFlagSet("leaderboard", flag.ExitOnError)
	output := fs.StringP("output", "o", "leaderboard.json", "Output JSON path")
	top := fs.Int("top", 0, "Only output top N players (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ddnet-lb leaderboard <db> [-o output.json] [--top N]")
		os.Exit(1)
	}

	cfg := config.Load()
	cfg.DBPath = fs.Arg(0)
	cfg.OutputPath = *output
	cfg.Top = *top

	runStage(cfg, func(ctx context.Context, svc *service.GeneratorService) error {
		return svc.GenerateLeaderboard(ctx)
	})
}

func cmdMaps(args []string) {
	fs := flag.NewFlagSet("maps", flag.ExitOnError)
	output := fs.StringP("output", "o", "", "Output JSON path (required)")
	fs.Parse(args)

	if fs.NArg() < 1 || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: ddnet-lb maps <db> -o <output.json>")
		os.Exit(1)
	}

	cfg := config.Load()
	cfg.DBPath = fs.Arg(0)
	cfg.OutputPath = *output

	runStage(cfg, func(ctx context.Context, svc *service.GeneratorService) error {
		return svc.GenerateCategoryIndex(ctx)
	})
}

func cmdProfiles(args []string) {
	fs := flag.NewFlagSet("profiles", flag.ExitOnError)
	output := fs.StringP("output", "o", "profiles", "Output directory (one .json per player)")
	playersFile := fs.String("players-file", "", "Path to leaderboard.json (required)")
	fs.Parse(args)

	if fs.NArg() < 1 || *playersFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: ddnet-lb profiles <db> --players-file <leaderboard.json> [-o profiles]")
		os.Exit(1)
	}

	cfg := config.Load()
	cfg.DBPath = fs.Arg(0)
	cfg.OutputDir = *output
	cfg.PlayersFile = *playersFile

	runStage(cfg, func(ctx context.Context, svc *service.GeneratorService) error {
		_, err := svc.GenerateProfiles(ctx)
		return err
	})
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "", "Listen address (default from SERVE_ADDR or :8080)")
	dir := fs.String("dir", "", "Artifact directory (default from SERVE_DIR or public)")
	fs.Parse(args)

	cfg := config.Load()
	if *addr != "" {
		cfg.ServeAddr = *addr
	}
	if *dir != "" {
		cfg.ServeDir = *dir
	}

	fx.New(
		fxmodules.Module,
		fx.Supply(cfg),
		fx.NopLogger,
		fx.Invoke(server.Run),
	).Run()
}

func cmdInitDB(args []string) {
	fs := flag.NewFlagSet("initdb", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ddnet-lb initdb <db>")
		os.Exit(1)
	}

	cfg := config.Load()
	log := logger.New(cfg)

	if err := database.Init(fs.Arg(0), log); err != nil {
		log.Error().Err(err).Msg("initdb failed")
		os.Exit(1)
	}
}

// runStage runs one generation stage inside an fx app: the database opens on
// start, the stage runs once, and shutdown closes the handle whether or not
// the stage succeeded.
func runStage(cfg *config.Config, stage func(context.Context, *service.GeneratorService) error) {
	exitCode := 0

	app := fx.New(
		fxmodules.Module,
		fx.Supply(cfg),
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle, svc *service.GeneratorService, shutdowner fx.Shutdowner, log zerolog.Logger) {
			cfg.Log(log)
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						if err := stage(context.Background(), svc); err != nil {
							log.Error().Err(err).Msg("generation failed")
							exitCode = 1
						}
						_ = shutdowner.Shutdown()
					}()
					return nil
				},
			})
		}),
	)

	app.Run()
	os.Exit(exitCode)
}
