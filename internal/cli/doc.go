// Package cli implements the interactive shopadmin console: a REPL over the
// admin API services, with screen-based navigation gated by session guards.
//
// Navigation model
//
// Every command targets a screen. Before a screen is entered, the guard
// protecting it inspects the current session: authenticated screens bounce
// anonymous visitors to the login screen, and the login screen bounces
// authenticated users to the overview. A 401 from any API call lands the
// user back on the login screen through the session teardown hook.
package cli
