// Package people owns the student and supervisor identity records.
//
// Both are created on first reference and looked up by natural key (email)
// thereafter. The find-or-create is expressed as a single conditional upsert
// returning the resolved identifier, used by the intake feature when a form
// submission arrives.
package people
