// package tasks implements playlist migration between music services.
//
// The core abstraction is Migrator, which exports playlists from a
// source service, matches each track against the destination catalog,
// and rebuilds the playlists track by track. Progress is reported on
// an ordered event channel that the CLI layer consumes for display.
package tasks
