package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nordvik/inkwell/internal/db"
	"github.com/nordvik/inkwell/internal/security"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const tempPasswordLength = 16

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Reset an account password to a generated temporary one",
	Args:  cobra.ExactArgs(1),
	RunE:  runResetPassword,
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	email := strings.ToLower(strings.TrimSpace(args[0]))
	if email == "" {
		return fmt.Errorf("email must not be empty")
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "inkwell.db"))
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	users := db.NewUserRepository(database)
	user, err := users.FindByNormalizedEmail(email)
	if err != nil {
		return fmt.Errorf("no account found for %s", email)
	}

	password, err := security.TempPassword(tempPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := users.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("store temporary password: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Temporary password for %s: %s\n", email, password)
	fmt.Fprintln(cmd.OutOrStdout(), "Change it from the admin console after signing in.")
	return nil
}
