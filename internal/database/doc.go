// Package database stores discovery run history in SQLite.
//
// Each completed run's brief is persisted as JSON alongside summary
// columns so past runs can be listed and compared without decoding
// every stored brief. The pure-Go modernc.org/sqlite driver keeps the
// binary free of cgo.
package database
