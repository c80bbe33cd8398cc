package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bguiz/schwag"
	"github.com/bguiz/schwag/cmd/schwag/commands"
	"github.com/bguiz/schwag/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schwag v%s\n", schwag.Version())
	case "help", "-h", "--help":
		printUsage()
	case "serve":
		if err := commands.HandleServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "routes":
		if err := commands.HandleRoutes(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := commands.HandleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`schwag - request and response validation for Swagger-style schemas

Usage:
  schwag <command> [flags]

Commands:
  serve     Start a request-validating stub server for schema documents
  routes    List the route operations a schema document declares
  check     Validate a JSON value against a node of a schema document
  mcp       Run the MCP server over stdio
  version   Print the version
  help      Show this help

Run 'schwag <command> -h' for command-specific flags.`)
}
