package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// printFn writes the prompt without a trailing newline.
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	ListFolders(ctx context.Context, args []string) error
	CreateFolder(ctx context.Context, args []string) error
	RenameFolder(ctx context.Context, args []string) error
	DeleteFolder(ctx context.Context, args []string) error

	ListFiles(ctx context.Context, args []string) error
	ListFolderFiles(ctx context.Context, args []string) error
	CreateFile(ctx context.Context, args []string) error
	RenameFile(ctx context.Context, args []string) error
	DeleteFile(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: folders, mkdir <name>, renamedir <id> <name>, rmdir <id>, " +
		"files, ls <folderID>, touch <name> <size> [folderID], rename <id> <name>, rm <id>, logout, exit"
)

// runREPL starts the read-eval-print loop of the filekeeper CLI.
//
// It reads a line from reader, treats the first token as the command and the
// rest as its arguments, and dispatches to methods on a. Handler errors are
// printed and the loop continues. The loop exits on EOF or on "exit"/"quit".
//
//	Not logged in:
//	  register, login, help, exit | quit
//
//	Logged in:
//	  folders                        list folders
//	  mkdir <name>                   create a folder
//	  renamedir <id> <name>          rename a folder
//	  rmdir <id>                     delete a folder
//	  files                          list files
//	  ls <folderID>                  list files of a folder
//	  touch <name> <size> [folderID] create a file record
//	  rename <id> <name>             rename a file
//	  rm <id>                        delete a file
//	  logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("fk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var handler func(context.Context, []string) error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "register":
			handler = a.Register
		case "login":
			handler = a.Login
		case "logout":
			handler = a.Logout
		case "folders":
			handler = a.ListFolders
		case "mkdir":
			handler = a.CreateFolder
		case "renamedir":
			handler = a.RenameFolder
		case "rmdir":
			handler = a.DeleteFolder
		case "files":
			handler = a.ListFiles
		case "ls":
			handler = a.ListFolderFiles
		case "touch":
			handler = a.CreateFile
		case "rename":
			handler = a.RenameFile
		case "rm":
			handler = a.DeleteFile
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := handler(ctx, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}
