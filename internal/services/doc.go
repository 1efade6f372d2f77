// package services defines the source and destination interfaces for
// streaming services and their HTTP implementations.
//
// Spotify is the migration source, talking to the Web API directly
// with OAuth2. YouTube Music is the destination, reached through a
// local proxy server that wraps the ytmusicapi library.
//
// Request failures are classified with the sentinel errors in
// [shared]: authentication failures wrap [shared.ErrAuthFailed] and
// retryable conditions (rate limits, server errors, network failures)
// wrap [shared.ErrTransient].
package services
