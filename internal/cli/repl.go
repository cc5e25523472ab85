package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL chrome output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	syncRoute(ctx context.Context)

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Catalog(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Retry(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Appearance(ctx context.Context, args []string) error
	Status(ctx context.Context) error
	Metrics(ctx context.Context) error
}

// runREPL reads commands from lr until EOF, interrupt, or "exit"/"quit".
//
// The prompt carries the current status (from statusFn). Commands:
//
//	Not logged in:
//	  - help                            show available commands
//	  - login                           sign in (prompts for name and email)
//	  - theme [light|dark|system]       show or set the theme preference
//	  - appearance [light|dark|none]    set what the host reports
//	  - status                          show session and catalog state
//	  - exit | quit                     leave the program
//
//	Logged in, additionally:
//	  - catalog [masculino|feminino]    back to the catalog, or switch tab
//	  - filter <all|key>                narrow the list to one subcategory
//	  - (l)ist                          print the catalog again
//	  - retry                           reload after a failure
//	  - open <id>                       open a listed product
//	  - show <id>                       open any product by id
//	  - metrics                         print client metrics
//	  - logout                          sign out
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. After every command the REPL lets the app render a
// route change.
func runREPL(ctx context.Context, a execIface, statusFn func() string, lr lineReader) {
	for {
		prompt := fmt.Sprintf("storefront%s> ", statusFn())
		lr.SetPrompt(prompt)

		line, err := lr.Readline()
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first (type 'login').")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: catalog, filter, (l)ist, retry, open, show, theme, appearance, status, metrics, logout, exit")
			} else {
				printlnFn("Available commands: login, theme, appearance, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "catalog":
			_ = a.Catalog(ctx, args)

		case "filter":
			_ = a.Filter(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "open":
			_ = a.Open(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "theme":
			_ = a.Theme(ctx, args)

		case "appearance":
			_ = a.Appearance(ctx, args)

		case "status":
			_ = a.Status(ctx)

		case "metrics":
			_ = a.Metrics(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.syncRoute(ctx)
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "logout", "catalog", "filter", "l", "list", "retry", "open", "show", "metrics":
		return true
	}
	return false
}
