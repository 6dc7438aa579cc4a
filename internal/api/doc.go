// Package api is the single shared HTTP client for the admin REST API.
//
// Every request passes through an explicit two-stage transport chain:
//
//  1. resilience (outermost): a network-level failure — the connection could
//     not be established, as opposed to an HTTP error status — triggers the
//     warm-up coordinator and one retry of the original request; a final 401
//     response fires the unauthorized hook so the session can be torn down.
//  2. bearer: attaches "Authorization: Bearer <token>" from the token source
//     when a token exists. Requests that already carry the header (the
//     profile fetch during login) keep theirs.
//
// The warm-up coordinator collapses concurrent wake demands into a single
// in-flight POST /api/warmup shared by all callers, so a sleeping backend is
// poked at most once no matter how many requests fail at the same moment.
package api
