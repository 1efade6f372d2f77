// package repositories implements SQLite persistence for migration history.
package repositories
