// Command client is a small CLI around the registry API, mostly used for
// smoke-testing a running server:
//
//	client -addr http://localhost:8080 -token valid-token list
//	client -name Charlie -email charlie@example.com create
//	client -id 3 get
//	client -id 3 -name Chuck -email chuck@example.com update
//	client -id 3 delete
//
// Flags come before the command: parsing stops at the first non-flag
// argument.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/apiclient"
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

func main() {
	log := logger.NewLogger("registry-client")

	addr := flag.String("addr", "http://localhost:8080", "Registry server base URL")
	token := flag.String("token", config.DefaultAuthToken, "Authorization token")
	timeout := flag.Duration("timeout", 15*time.Second, "Request timeout")

	id := flag.Int64("id", 0, "User id (get/update/delete)")
	name := flag.String("name", "", "User name (create/update)")
	email := flag.String("email", "", "User email (create/update)")
	page := flag.Int("page", 0, "Page number (list)")
	pageSize := flag.Int("pageSize", 0, "Page size (list)")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] list|get|create|update|delete")
		os.Exit(2)
	}

	client := apiclient.NewClient(apiclient.Config{
		BaseURL:   *addr,
		AuthToken: *token,
		Timeout:   *timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch cmd := flag.Arg(0); cmd {
	case "list":
		users, err := client.ListUsers(ctx, *page, *pageSize)
		exitOnError(log, err)
		printJSON(users)

	case "get":
		user, err := client.GetUser(ctx, *id)
		exitOnError(log, err)
		printJSON(user)

	case "create":
		created, err := client.CreateUser(ctx, models.User{Name: *name, Email: *email})
		exitOnError(log, err)
		printJSON(created)

	case "update":
		err := client.UpdateUser(ctx, *id, *name, *email)
		exitOnError(log, err)
		fmt.Println("updated")

	case "delete":
		removed, err := client.DeleteUser(ctx, *id)
		exitOnError(log, err)
		printJSON(removed)

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(2)
	}
}

func exitOnError(log *logger.Logger, err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("request failed")
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
