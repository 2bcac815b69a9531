// Command mcp-client is a small REPL for poking at `gameshelf mcp`.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"gameshelf/internal/catalog"
	"gameshelf/internal/mcpserver"
	"gameshelf/internal/output"
)

const usage = `Commands:
  /hot          list the hot games
  /popular      list the popular games
  /tab <name>   select Home, Search or Profile
  /screen       show the current screen
  /tools        list the server tools
  /exit         quit
`

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client gameshelf mcp")
		os.Exit(2)
	}

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "gameshelf-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: exec.Command(args[0], args[1:]...)}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Print("Connected to gameshelf.\n" + usage + "\n")
	sh := &shell{session: session, out: os.Stdout}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() || sh.exec(ctx, scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

// shell maps REPL commands onto gameshelf tool calls.
type shell struct {
	session *mcp.ClientSession
	out     io.Writer
}

// exec runs one input line and reports whether the REPL should stop.
func (sh *shell) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "/exit", "/quit":
		fmt.Fprintln(sh.out, "Goodbye!")
		return true
	case "/tools":
		sh.tools(ctx)
	case "/hot":
		sh.games(ctx, catalog.NameHot)
	case "/popular":
		sh.games(ctx, catalog.NamePopular)
	case "/tab":
		if len(fields) != 2 {
			fmt.Fprintln(sh.out, "Usage: /tab <Home|Search|Profile>")
			return false
		}
		sh.selectTab(ctx, fields[1])
	case "/screen":
		var res mcpserver.ScreenResult
		if sh.call(ctx, "current_screen", struct{}{}, &res) {
			sh.printScreen(res)
		}
	default:
		fmt.Fprintf(sh.out, "Unknown command %q\n%s", fields[0], usage)
	}
	return false
}

func (sh *shell) tools(ctx context.Context) {
	for tool, err := range sh.session.Tools(ctx, nil) {
		if err != nil {
			fmt.Fprintf(sh.out, "list tools: %v\n", err)
			return
		}
		fmt.Fprintf(sh.out, "  %-15s %s\n", tool.Name, tool.Description)
	}
}

func (sh *shell) games(ctx context.Context, name string) {
	var res mcpserver.ListGamesResult
	if !sh.call(ctx, "list_games", mcpserver.ListGamesArgs{Catalog: name}, &res) {
		return
	}
	fmt.Fprintf(sh.out, "%s (%d)\n", res.Catalog, res.Count)
	for i, g := range res.Games {
		stars := strings.Repeat("★", output.StarCount(g.Rating))
		fmt.Fprintf(sh.out, "  %d. %-32s %-5s %.1f", i+1, g.Title, stars, g.Rating)
		if len(g.Genres) > 0 {
			fmt.Fprintf(sh.out, "  [%s]", strings.Join(g.Genres, ", "))
		}
		fmt.Fprintln(sh.out)
	}
}

func (sh *shell) selectTab(ctx context.Context, tab string) {
	var res mcpserver.SelectTabResult
	if !sh.call(ctx, "select_tab", mcpserver.SelectTabArgs{Tab: tab}, &res) {
		return
	}
	if res.Changed {
		fmt.Fprintf(sh.out, "%s -> %s\n", res.Previous, res.Current)
	} else {
		fmt.Fprintf(sh.out, "already on %s\n", res.Current)
	}
	sh.printScreen(res.Screen)
}

// printScreen prefers the server's text rendering and falls back to titles.
func (sh *shell) printScreen(s mcpserver.ScreenResult) {
	if s.Text != "" {
		fmt.Fprint(sh.out, s.Text)
		return
	}
	fmt.Fprintf(sh.out, "[%s]\n", s.Tab)
	for _, sec := range s.Sections {
		fmt.Fprintf(sh.out, "%s (%s)\n", sec.Title, sec.Orientation)
		for _, it := range sec.Items {
			fmt.Fprintf(sh.out, "  %s\n", it.Title)
		}
	}
}

// call invokes tool and decodes its JSON text content into into. Tool errors
// are printed and reported as false.
func (sh *shell) call(ctx context.Context, tool string, args, into any) bool {
	res, err := sh.session.CallTool(ctx, &mcp.CallToolParams{Name: tool, Arguments: args})
	if err != nil {
		fmt.Fprintf(sh.out, "%s: %v\n", tool, err)
		return false
	}
	for _, c := range res.Content {
		text, ok := c.(*mcp.TextContent)
		if !ok {
			continue
		}
		if res.IsError {
			fmt.Fprintf(sh.out, "error: %s\n", text.Text)
			return false
		}
		if err := json.Unmarshal([]byte(text.Text), into); err != nil {
			fmt.Fprintf(sh.out, "%s: decode result: %v\n", tool, err)
			return false
		}
		return true
	}
	fmt.Fprintf(sh.out, "%s: empty result\n", tool)
	return false
}
