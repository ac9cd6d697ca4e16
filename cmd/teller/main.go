package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/goteller/internal/adapter/accountsfile"
	"github.com/iho/goteller/internal/adapter/idgen"
	"github.com/iho/goteller/internal/adapter/repository/memory"
	"github.com/iho/goteller/internal/adapter/transactionfile"
	"github.com/iho/goteller/internal/domain"
	"github.com/iho/goteller/internal/infrastructure/config"
	"github.com/iho/goteller/internal/infrastructure/logger"
	"github.com/iho/goteller/internal/stream"
	"github.com/iho/goteller/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "teller <accounts-file> <transaction-file>",
		Short: "Bank teller transaction front end",
		Long: `Reads transaction requests line by line from standard input, validates
them against the current-accounts file, and writes the daily transaction
file at logout.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env for local overrides of limits and log settings.
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

			limits, err := cfg.Limits()
			if err != nil {
				return err
			}

			return run(args[0], args[1], limits, os.Stdin, cmd.OutOrStdout(), log)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the ledger, the transaction-file writer and the engine, then
// drives the read loop until the request stream is exhausted. The engine
// shares the reader with the loop so its lookahead cannot desynchronize
// the code lines read here.
func run(accountsPath, transactionPath string, limits domain.Limits, in io.Reader, out io.Writer, log zerolog.Logger) error {
	accounts, err := accountsfile.Load(accountsPath)
	if err != nil {
		return err
	}
	log.Info().Int("accounts", len(accounts)).Str("path", accountsPath).Msg("accounts file loaded")

	ledger := memory.NewLedger(accounts)
	writer := transactionfile.NewWriter(transactionPath, log)
	engine := usecase.NewEngine(domain.NewSession(), ledger, writer, idgen.NewULIDGenerator(), limits, log)

	reader := stream.NewReader(in)
	for {
		line, ok := reader.Next()
		if !ok {
			break
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}

		if resp := engine.Handle(code, reader); resp != "" {
			fmt.Fprintln(out, resp)
		}
	}

	return nil
}
