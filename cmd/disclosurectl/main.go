// disclosurectl is the operator tool for the disclosure service: it mints
// development identities, creates organisations and applies migrations.
//
// Usage:
//
//	disclosurectl keygen  --out-dir ./dev
//	disclosurectl token   --key ./dev/signing.pem --sub agent-1 --email agent@acme.test --roles Agent --org <org id>
//	disclosurectl org create --dsn file:disclosure.db --name "Acme Realty"
//	disclosurectl org list   --dsn file:disclosure.db
//	disclosurectl migrate    --dsn file:disclosure.db
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, stdout io.Writer) error
}

var commands = []command{
	{"keygen", "generate an Ed25519 signing key and matching JWKS", runKeygen},
	{"token", "mint a signed identity token", runToken},
	{"org", "create or list organisations (org create|list)", runOrg},
	{"migrate", "apply database migrations", runMigrate},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stdout)
		return nil
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, args[1:], stdout)
		}
	}
	printUsage(stdout)
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: disclosurectl <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}

// newFlagSet returns a flag set that reports parse errors instead of exiting.
func newFlagSet(name string, stdout io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stdout)
	return fs
}
