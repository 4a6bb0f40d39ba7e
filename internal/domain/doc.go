// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/ord, domain/account).
// This root package holds the sentinel error taxonomy and validation types
// shared across all entities and adapters.
package domain
