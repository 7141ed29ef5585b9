// Package utils provides common utility functions for the loaning hub.
// It currently holds the normalization helpers for spreadsheet-sourced values,
// shared by the HTTP import endpoint and the CLI bulk importer.
package utils
