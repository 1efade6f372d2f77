// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-select playlist picker used by the migrate
// command when no playlist IDs are passed on the command line. Space
// toggles the highlighted playlist, enter confirms the selection, and
// q aborts without migrating anything.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Keyboard navigation uses vim-style bindings (j/k, space, enter, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
