// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the history database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the history database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:   "url",
				Usage:  "Print the Spotify OAuth2 authorization URL",
				Action: r.AuthURL,
			},
			{
				Name:  "token",
				Usage: "Exchange an authorization code for an access token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "code",
						Usage:    "Authorization code from the OAuth redirect",
						Required: true,
					},
				},
				Action: r.AuthToken,
			},
			{
				Name:   "status",
				Usage:  "Check authentication state for both services",
				Action: r.AuthStatus,
			},
		},
	}
}

// playlistsCommand lists source playlists.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlists",
		Usage: "List Spotify playlists",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Playlists,
	}
}

// migrateCommand handles playlist migration operations
func migrateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Migrate playlists to YouTube Music",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Migrate playlists (interactive picker when no IDs are given)",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "playlists",
						Aliases: []string{"p"},
						Usage:   "Source playlist IDs to migrate",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Migrate every playlist in the source library",
					},
					&cli.FloatFlag{
						Name:  "min-score",
						Usage: "Minimum match score (0-1) required to accept a candidate",
					},
					&cli.IntFlag{
						Name:  "search-limit",
						Usage: "Destination search results scored per track",
					},
					&cli.StringFlag{
						Name:  "report-dir",
						Usage: "Write JSON and CSV reports into this directory",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "Skip persisting results to the history database",
					},
				},
				Action: r.MigrateRun,
			},
			{
				Name:  "history",
				Usage: "Show past migration runs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MigrateHistory,
			},
		},
	}
}
