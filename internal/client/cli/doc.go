// Package cli provides the interactive TaskKeeper command-line client.
//
// It wires configuration, the HTTP API client and a REPL. A background
// watcher pings the server and shows online/offline in the prompt.
//
// Commands:
//   - register / login / logout
//   - list                 numbered list of your tasks
//   - add <title>          create a task
//   - done <n|id>          mark a task completed
//   - delete <n|id>        delete a task
//   - help / exit
//
// <n> refers to the position in the last "list" output.
package cli
