// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It is an optional
// backend selected with database.driver=postgres; the SQLite file store is the
// default. It handles connections, query execution, and mapping driver errors
// onto the store error taxonomy.
package postgres
