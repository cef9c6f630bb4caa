// Package domain contains shared domain types used across entity sub-packages.
// The board model and its ordering engine live in domain/board. This root
// package holds the sentinel errors and the typed ValidationError and
// StorageError shared by every layer.
package domain
