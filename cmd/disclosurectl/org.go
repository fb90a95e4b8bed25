package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
)

const defaultDSN = "file:disclosure.db"

func runOrg(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: disclosurectl org create|list [flags]")
	}
	switch args[0] {
	case "create":
		return runOrgCreate(ctx, args[1:], stdout)
	case "list":
		return runOrgList(ctx, args[1:], stdout)
	default:
		return fmt.Errorf("unknown org command %q", args[0])
	}
}

func runOrgCreate(ctx context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("org create", stdout)
	dsn := fs.String("dsn", defaultDSN, "database DSN")
	name := fs.String("name", "", "organisation name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*name) == "" {
		return fmt.Errorf("--name is required")
	}

	st, err := openMigrated(*dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	org := domain.Org{
		ID:        idx.New().String(),
		Name:      strings.TrimSpace(*name),
		CreatedAt: time.Now().UTC(),
	}
	if err := st.Orgs().CreateOrg(ctx, org); err != nil {
		return fmt.Errorf("create org: %w", err)
	}
	fmt.Fprintln(stdout, org.ID)
	return nil
}

func runOrgList(ctx context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("org list", stdout)
	dsn := fs.String("dsn", defaultDSN, "database DSN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := openMigrated(*dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	orgs, err := st.Orgs().ListOrgs(ctx)
	if err != nil {
		return fmt.Errorf("list orgs: %w", err)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATED")
	for _, o := range orgs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.ID, o.Name, o.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func runMigrate(_ context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("migrate", stdout)
	dsn := fs.String("dsn", defaultDSN, "database DSN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := openMigrated(*dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	version, dirty, err := st.MigrationVersion()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	fmt.Fprintf(stdout, "schema version %d (dirty=%t)\n", version, dirty)
	return nil
}

func openMigrated(dsn string) (*sqlite.Store, error) {
	st, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return st, nil
}
