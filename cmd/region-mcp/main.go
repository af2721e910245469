package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
	"github.com/ironsheep/region-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("REGION_MCP_LOG_LEVEL") == "debug"
	if debug {
		regions.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("region-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "segment":
			n, err := runSegment(os.Args[2:])
			if err != nil {
				log.Fatalf("segment: %v", err)
			}
			fmt.Printf("%d regions\n", n)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n\n", os.Args[1])
			printHelp()
			os.Exit(2)
		}
	}

	if debug {
		log.Printf("Region MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	server.Version = Version
	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("region-tools-mcp - MCP server for connected-region queries on images")
	fmt.Println()
	fmt.Println("Usage: region-mcp [options]")
	fmt.Println("       region-mcp segment <in.png> <out.png>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  segment          Label the regions of an image and write the label map")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  REGION_MCP_LOG_LEVEL=debug   Enable debug logging")
	fmt.Println()
	fmt.Println("Without a command the server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
