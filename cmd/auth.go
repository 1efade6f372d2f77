package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/plsync/plsync/internal/shared"
)

// AuthURL prints the Spotify OAuth2 authorization URL for user login.
func (r *Runner) AuthURL(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify credentials not configured", shared.ErrServiceUnavailable)
	}

	state := shared.GenerateID()
	authURL := r.spotify.GetAuthURL(state)

	r.writePlain("Open the following URL in your browser to authorize access:\n\n")
	r.writePlain("%s\n\n", authURL)
	r.writePlain("After approving, copy the 'code' parameter from the redirect URL and run:\n")
	r.writePlain("  plsync auth token --code <code>\n")

	return nil
}

// AuthToken exchanges an authorization code for an access token.
func (r *Runner) AuthToken(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify credentials not configured", shared.ErrServiceUnavailable)
	}

	code := cmd.String("code")
	if err := r.spotify.Authenticate(ctx, map[string]string{"auth_code": code}); err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}

	profile, err := r.spotify.UserProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}

	r.logger.Info("authenticated with Spotify", "user", profile.ID)
	r.writePlain("✓ Authenticated as %s\n", profile.DisplayName)
	r.writePlain("Save the token under [credentials.spotify] access_token in config.toml to reuse it.\n")

	return nil
}

// AuthStatus checks authentication state for both services.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.writePlainHeader("Authentication Status")

	if r.spotify == nil {
		r.writePlain("Spotify: not configured (set client_id and client_secret in config.toml)\n")
	} else if r.config.Credentials.Spotify.AccessToken == "" {
		r.writePlain("Spotify: no access token (run 'plsync auth url')\n")
	} else {
		if err := r.spotify.Authenticate(ctx, map[string]string{
			"access_token": r.config.Credentials.Spotify.AccessToken,
		}); err != nil {
			r.writePlain("Spotify: ✗ %v\n", err)
		} else if profile, err := r.spotify.UserProfile(ctx); err != nil {
			r.writePlain("Spotify: ✗ token rejected (%v)\n", err)
		} else {
			r.writePlain("Spotify: ✓ authenticated as %s\n", profile.DisplayName)
		}
	}

	if err := r.youtube.Health(ctx); err != nil {
		r.writePlain("YouTube Music: ✗ proxy unreachable (%v)\n", err)
	} else {
		r.writePlain("YouTube Music: ✓ proxy healthy\n")
	}

	return nil
}
