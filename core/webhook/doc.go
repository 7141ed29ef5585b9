// Package webhook implements the outbound form-submission forwarder.
//
// Equipment request forms accepted by the intake feature are mirrored to a
// third-party workflow endpoint. Delivery is best-effort: one POST, no retry.
// The hub's own persistence never depends on the forwarder's outcome.
package webhook
