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
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Posts(ctx context.Context) error
	Users(ctx context.Context) error
	User(ctx context.Context, arg string) error
	Purge(ctx context.Context) error
}

// runREPL reads commands line by line from in and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	help            show available commands
//	login           store an api key for the given credentials
//	logout          forget the stored api key
//	posts           show the feed of posts with their authors
//	users           list users
//	user <id>       show a cached user and their posts
//	purge           drop cached users and posts
//	exit | quit     leave the program
//
// Handler errors are not acted on here; handlers log their own errors, so
// one failing command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("league %s> ", statusFn()))
		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: posts, users, user <id>, purge, logout, exit")
			} else {
				printlnFn("Available commands: login, posts, users, user <id>, purge, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "posts":
			_ = a.Posts(ctx)

		case "users":
			_ = a.Users(ctx)

		case "user":
			if len(parts) < 2 {
				printlnFn("Usage: user <id>")
				continue
			}
			_ = a.User(ctx, parts[1])

		case "purge":
			_ = a.Purge(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
