package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/archway-network/cosmwasm-mcp-template/contract"
	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newRootCmd constructs the root CLI command; exposed for unit testing.
func newRootCmd() *cobra.Command {
	var deploymentsFile string
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "cwmsgctl",
		Short:         "Validate and build CosmWasm contract messages offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&deploymentsFile, "deployments", os.Getenv("CW_MCP_DEPLOYMENTS_FILE"), "YAML deployment table replacing the compiled-in one")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	builder := func() (*contract.Builder, error) {
		log.Debug().Str("deployments_file", deploymentsFile).Msg("loading contract registries")
		return contract.New(contract.WithDeploymentsFile(deploymentsFile))
	}

	rootCmd.AddCommand(newDeploymentsCmd(builder))
	rootCmd.AddCommand(newSchemaCmd(builder))
	rootCmd.AddCommand(newBuildCmd(builder))
	return rootCmd
}

type builderFunc func() (*contract.Builder, error)

func newDeploymentsCmd(builder builderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "deployments",
		Short: "List the known contract deployments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := builder()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"deployments": b.Deployments()})
		},
	}
}

func newSchemaCmd(builder builderFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "schema {query|execute}",
		Short:     "Print the JSON schema of the query or execute messages",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"query", "execute"},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := builder()
			if err != nil {
				return err
			}
			if args[0] == "query" {
				return printJSON(cmd.OutOrStdout(), b.QuerySchema())
			}
			return printJSON(cmd.OutOrStdout(), b.ExecuteSchema())
		},
	}
	return cmd
}

func newBuildCmd(builder builderFunc) *cobra.Command {
	var contractAddr, msg, funds string

	cmd := &cobra.Command{
		Use:       "build {query|execute}",
		Short:     "Validate a message and wrap it into a QueryRequest or CosmosMsg",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"query", "execute"},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := builder()
			if err != nil {
				return err
			}
			payload := json.RawMessage(msg)
			if msg == "-" {
				if payload, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read message from stdin: %w", err)
				}
			}

			var res any
			if args[0] == "query" {
				if funds != "" {
					return fmt.Errorf("--funds only applies to execute messages")
				}
				res, err = b.BuildQuery(contractAddr, payload)
			} else {
				res, err = b.BuildExecute(contractAddr, payload, funds)
			}
			if err != nil {
				if e, ok := cwerrors.As(err); ok {
					_ = printJSON(cmd.OutOrStdout(), map[string]any{"error": e})
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&contractAddr, "contract", "c", "", "Contract address of a known deployment (required)")
	cmd.Flags().StringVarP(&msg, "msg", "m", "", `Message JSON, e.g. '{"token_info":{}}', or "-" to read stdin (required)`)
	cmd.Flags().StringVarP(&funds, "funds", "f", "", "Native funds to attach to an execute message, e.g. 1000 or 1000aarch")
	_ = cmd.MarkFlagRequired("contract")
	_ = cmd.MarkFlagRequired("msg")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
