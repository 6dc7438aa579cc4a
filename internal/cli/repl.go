package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Overview(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	Products(ctx context.Context, args []string) error
	Categories(ctx context.Context, args []string) error
	Orders(ctx context.Context, args []string) error
	Inventory(ctx context.Context, args []string) error
	Reports(ctx context.Context, args []string) error
	Addresses(ctx context.Context, args []string) error
}

// runREPL starts the read–eval–print loop of the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a', passing the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shopadmin> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: overview, users, products, categories, orders, inventory, reports, addresses, whoami, logout, exit")
				printlnFn("Feature commands take subcommands, e.g.: products add, products update <id>, products del <id>")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "overview":
			_ = a.Overview(ctx)

		case "users":
			_ = a.Users(ctx, args)

		case "products":
			_ = a.Products(ctx, args)

		case "categories":
			_ = a.Categories(ctx, args)

		case "orders":
			_ = a.Orders(ctx, args)

		case "inventory":
			_ = a.Inventory(ctx, args)

		case "reports":
			_ = a.Reports(ctx, args)

		case "addresses":
			_ = a.Addresses(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
