// Package payload defines the wire representation of registry entities and
// the translation to and from domain types.
//
// Wire structs mirror the registry's JSON contract exactly: snake_case keys,
// optional fields as pointers that are omitted when absent, and required
// collections that are always emitted even when empty. Translation validates
// on both sides of the boundary, so an entity that round-trips through the
// wire comes back semantically identical or not at all.
package payload
