// Package session owns the authenticated session of the shopadmin CLI: the
// credential (user profile + bearer token), its durable persistence across
// runs, and the state machine driving login and logout.
//
// Components
//
//   - Store / FileStore — one JSON record on disk holding the credential.
//     Loading silently discards absent, malformed, or expired records; a
//     corrupt session file is never an error, it is "no session".
//   - Container — process-wide in-memory state: idle/loading/succeeded/failed
//     status, the current credential, and the last user-facing error message.
//     All transitions are applied atomically under a mutex. Logout notifies
//     registered reset listeners so dependent caches can drop per-session
//     state.
//
// The container implements the token source consumed by the API client's
// bearer stage, and delegates the two dependent login requests (token
// exchange, then profile fetch) to an Authenticator implemented by the
// services layer.
package session
