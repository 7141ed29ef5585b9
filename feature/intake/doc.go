// Package intake implements the equipment request form intake.
//
// A submission resolves its student and supervisor through the people
// package's natural-key upserts, persists an audit row with the raw payload,
// and mirrors that payload to a third-party workflow webhook. Forwarding and
// archiving are strictly best-effort: the stored submission is the source of
// truth and never depends on either side effect.
package intake
