package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/plsync/plsync/internal/services"
	"github.com/plsync/plsync/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	var spotifyService *services.SpotifyService
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(
			config.Credentials.Spotify.ClientID,
			config.Credentials.Spotify.ClientSecret,
			config.Credentials.Spotify.RedirectURI,
		); err == nil {
			spotifyService = svc
		} else {
			logger.Warn("failed to initialize Spotify service", "error", err)
		}
	}

	youtubeService := services.NewYouTubeService(config.Credentials.YouTube.ProxyURL)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Spotify: spotifyService,
		YouTube: youtubeService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "plsync",
		Usage:    "Migrate playlists from Spotify to YouTube Music",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
