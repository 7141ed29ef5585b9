// Package inventory implements the equipment inventory feature.
//
// It owns the hub_inv table: the CRUD surface inherited from the original hub
// API plus the upsert reconciler that ingests spreadsheet-sourced records.
//
// # Reconciler
//
// Reconcile applies one externally sourced record as a single conditional
// upsert (insert, or full-replace on natural-key conflict). There is no
// separate existence check, so the check/write race of a read-then-write
// sequence cannot occur and applying the same record twice is idempotent.
//
// # Components
//
//   - Service: persistence operations against the inventory table.
//   - Importer: CSV/XLSX parsing for bulk imports, sharing the Reconcile path.
//   - Handler: HTTP endpoints under /api/inventory.
//   - Feature: registers the feature with the application loader.
package inventory
