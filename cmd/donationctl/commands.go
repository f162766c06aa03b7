package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	intconfig "donation-backend/internal/config"
	intdb "donation-backend/internal/db"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/repositories"
	"donation-backend/internal/services"
	"donation-backend/internal/utils"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the donation tables when missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := intconfig.LoadEnv()
			db := intconfig.ConnectDB(env.DBDSN)
			defer intconfig.CloseDB()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := intdb.EnsureSchema(ctx, db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema ready: %s\n", strings.Join(intdb.Tables, ", "))
			return nil
		},
	}
}

func staleCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "stale",
		Short: "List orders still in created status after a checkout was abandoned",
		Example: `  donationctl stale
  donationctl stale --older-than 72h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}
			env := intconfig.LoadEnv()
			db := intconfig.ConnectDB(env.DBDSN)
			defer intconfig.CloseDB()

			repo := repositories.DonationRepository{DB: db}
			list, err := repo.ListStale(cmd.Context(), utils.Now().Add(-olderThan))
			if err != nil {
				return fmt.Errorf("stale: %w", err)
			}
			writeStale(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "minimum age of a created order")
	return cmd
}

func writeStale(w io.Writer, list []models.Donation) {
	if len(list) == 0 {
		fmt.Fprintln(w, "no stale orders")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER ID\tAMOUNT\tDONOR\tCREATED")
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.OrderID, utils.FormatRupees(d.AmountMajor()), d.DonorName, utils.FormatDateTime(d.CreatedAt))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d stale order(s)\n", len(list))
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long: `Print a bcrypt hash for ADMIN_PASSWORD_HASH.

The password is read from the first argument, or from stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && err != io.EOF {
					return err
				}
				pw = strings.TrimRight(line, "\r\n")
			}
			hash, err := services.HashPassword(pw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
