// Package logging provides a unified logging interface for the library and
// its demo binary. It abstracts the underlying zerolog implementation,
// allowing consistent structured logging across components.
package logging
