// Package search contains the provider orchestration core.
//
// A [Provider] abstracts one external search back-end behind a single
// method. The [Registry] detects which providers are usable from the
// configured credentials at startup and holds them immutably. The
// [Orchestrator] resolves one query per call: it draws a provider
// uniformly at random from the registry, invokes it under a per-call
// timeout, and falls back through the remaining providers until one
// returns results or the set is exhausted.
//
// The orchestrator is stateless between calls and safe for concurrent
// use; concurrent searches share only the immutable registry.
package search
