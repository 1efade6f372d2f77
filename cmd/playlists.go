package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Playlists lists the authenticated user's Spotify playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	if err := r.authenticateServices(ctx); err != nil {
		return err
	}

	playlists, err := r.spotify.GetPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists found.\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Spotify Playlists (%d)", len(playlists)))
	for _, pl := range playlists {
		visibility := "private"
		if pl.Public {
			visibility = "public"
		}
		r.writePlain("%s  %s (%d tracks, %s)\n", pl.ID, pl.Name, pl.TrackCount, visibility)
	}

	return nil
}
