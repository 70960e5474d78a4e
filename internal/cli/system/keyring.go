package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/dayplanner/internal/cli"
	"github.com/julianstephens/dayplanner/internal/keyring"
	"github.com/julianstephens/dayplanner/internal/storage/postgres"
)

// KeyringSetCmd stores the PostgreSQL connection string in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !postgres.IsConnString(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	_, err := postgres.ValidateConnString(cmd.ConnectionString)
	if err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			// The keyring is encrypted, so a password is allowed here
			fmt.Println("⚠️  Warning: Connection string contains embedded credentials.")
			fmt.Println("   It will be stored as-is in the encrypted OS keyring.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("✓ Connection string stored successfully in OS keyring")
	fmt.Println("  Use --config postgres to store settings in PostgreSQL")
	return nil
}

// KeyringGetCmd prints the stored connection string with the password masked
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'dayplanner keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	fmt.Println("Connection string retrieved from keyring:")
	fmt.Println(maskPassword(connStr))
	return nil
}

// KeyringDeleteCmd removes the stored connection string
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println("✓ Connection string deleted from OS keyring")
	return nil
}

// KeyringStatusCmd reports whether the keyring works and holds a connection string
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}

	fmt.Println("✓ OS keyring is available")
	_, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		fmt.Println("✓ Connection string is stored in keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No connection string stored in keyring")
	default:
		return err
	}
	return nil
}

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check keyring availability." default:"1"`
}

// maskPassword hides the password in a URL or key/value connection string
func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		masked := make([]string, 0, len(parts))
		for _, part := range parts {
			if strings.HasPrefix(part, "password=") {
				masked = append(masked, "password=****")
			} else {
				masked = append(masked, part)
			}
		}
		return strings.Join(masked, " ")
	}

	return connStr
}
