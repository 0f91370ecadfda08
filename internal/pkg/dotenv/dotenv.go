package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load подтягивает .env и флаги командной строки. Флаг --port важнее переменной PORT.
func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	return applyFlags(os.Args[1:])
}

func applyFlags(args []string) error {
	var portFlag string

	fs := pflag.NewFlagSet("lavka", pflag.ContinueOnError)
	fs.StringVarP(&portFlag, "port", "p", "", "Server port (overrides PORT environment variable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
