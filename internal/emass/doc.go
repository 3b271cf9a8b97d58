// Package emass provides an HTTP client for the emass classifieds API.
//
// # Overview
//
// The client covers the three API surfaces the terminal UI consumes:
//
//   - listings: compiled filter searches against the six per-property-type
//     sub-resources, single-listing fetch, and the unfiltered collection
//   - favorites: list, add, remove, per-listing status check and count
//   - auth: login and register, returning a bearer session
//
// # Request handling
//
// All requests use context for cancellation, carry Accept and User-Agent
// headers, attach the session bearer token when one is set, and time out
// after 10 seconds. Responses with status 400 or above become errors; bodies
// are decoded as JSON into typed structs. Errors are wrapped with what failed
// ("execute request: …", "decode response: …").
//
// No request is retried and no circuit breaking exists; callers keep their
// prior state on failure and log the error.
//
// # Favorites
//
// FavoritesClient layers toggle semantics over the raw endpoints. The server
// owns the favorite set; the client checks the current status, issues the
// matching mutation, and only notifies observers after the round-trip
// succeeds. The check-then-act pair is deliberately not atomic — concurrent
// clients converge on the next re-fetch because the server is authoritative.
package emass
