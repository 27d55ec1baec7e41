package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zeeshanok/epic-calc/pkg/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluation HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP server port (default 8790, env PORT)")
	serveCmd.Flags().String("host", "", "Bind address (default 127.0.0.1, env HOST)")
}

func runServe(cmd *cobra.Command, args []string) error {
	portFlag, _ := cmd.Flags().GetInt("port")
	hostFlag, _ := cmd.Flags().GetString("host")
	addr := listenAddr(portFlag, hostFlag)
	server := api.New()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down epic-calc API...")
		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("epic-calc API listening on %s", addr)
	return server.Listen(addr)
}

// listenAddr resolves the bind address. Flags win over HOST and PORT, which
// win over the defaults.
func listenAddr(portFlag int, hostFlag string) string {
	port := envOrDefault("PORT", "8790")
	if portFlag != 0 {
		port = fmt.Sprintf("%d", portFlag)
	}

	host := envOrDefault("HOST", "127.0.0.1")
	if hostFlag != "" {
		host = hostFlag
	}

	return fmt.Sprintf("%s:%s", host, port)
}
