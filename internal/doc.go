// Package internal documents the event server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, response rendering, and routing
// - domain: business logic and domain models for users and events
// - storage: repositories (in-memory)
// - auth, audit, config, metrics: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
