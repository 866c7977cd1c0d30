// Package sqlite provides the file-backed SQLite implementation of the store
// interfaces, using the pure Go modernc.org/sqlite driver.
package sqlite
