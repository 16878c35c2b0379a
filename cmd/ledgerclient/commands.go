package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
	"github.com/spf13/cobra"
)

const (
	outputPlain = "plain"
	outputJSON  = "json"

	defaultNodeURL = "http://localhost:8080"
)

type commandContext struct {
	nodeURL string
	output  string
	out     io.Writer
}

func (cc *commandContext) client() *ledgerClient {
	return newLedgerClient(cc.nodeURL)
}

// print writes value as indented JSON, or through the plain formatter
func (cc *commandContext) print(value interface{}, plain func(w io.Writer)) error {
	switch cc.output {
	case outputJSON:
		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.out, string(encoded))
		return err
	case outputPlain:
		plain(cc.out)
		return nil
	default:
		return fmt.Errorf("unknown output format %s, use %s or %s", cc.output, outputPlain, outputJSON)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	cc := &commandContext{out: out}

	rootCmd := &cobra.Command{
		Use:           "ledgerclient",
		Short:         "Tax ledger node CLI",
		Long:          "A command-line tool for querying a tax ledger node and submitting calls to it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cc.nodeURL, "node", defaultNodeURL, "Base URL of the ledger node REST API")
	rootCmd.PersistentFlags().StringVarP(&cc.output, "output", "o", outputPlain, "Output format: plain|json")

	rootCmd.AddCommand(
		newSupplyCommand(cc),
		newAccountCommand(cc),
		newVotesCommand(cc),
		newTaxCommand(cc),
		newMintCommand(cc),
		newPoolsCommand(cc),
		newCallCommand(cc),
	)

	return rootCmd
}

func newSupplyCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Query the total supply and the supply caps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			supply := &api.SupplyResponse{}
			err := cc.client().get("/ledger/supply", "supply", supply)
			if err != nil {
				return err
			}

			return cc.print(supply, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Total supply: %s\nMax supply: %s\nMint cap per period: %s\n",
					supply.TotalSupply, supply.MaxSupply, supply.MintCapPerPeriod)
			})
		},
	}
}

func newAccountCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "account <address>",
		Short:   "Query the balance, the delegate and the votes of an account",
		Example: "  ledgerclient account erd1... --output json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := &api.AccountResponse{}
			err := cc.client().get("/ledger/account/"+url.PathEscape(args[0]), "account", account)
			if err != nil {
				return err
			}

			return cc.print(account, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Address: %s\nBalance: %s\nDelegate: %s\nVotes: %s\nCheckpoints: %d\nPool: %t\n",
					account.Address, account.Balance, account.Delegate, account.Votes, account.NumCheckpoints, account.IsPool)
			})
		},
	}
}

func newVotesCommand(cc *commandContext) *cobra.Command {
	var timestamp uint64

	cmd := &cobra.Command{
		Use:   "votes <address>",
		Short: "Query the current votes of an account, or its votes at a past timestamp",
		Example: `  ledgerclient votes erd1...
  ledgerclient votes erd1... --at 1700000000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/votes/" + url.PathEscape(args[0])
			if cmd.Flags().Changed("at") {
				path = fmt.Sprintf("%s/past/%d", path, timestamp)
			}

			var votes string
			err := cc.client().get(path, "votes", &votes)
			if err != nil {
				return err
			}

			return cc.print(map[string]string{"votes": votes}, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Votes: %s\n", votes)
			})
		},
	}
	cmd.Flags().Uint64Var(&timestamp, "at", 0, "Unix timestamp, in seconds, of the past lookup")

	return cmd
}

func newTaxCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tax",
		Short: "Query the active tax rates and the pending tax change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tax := &api.TaxResponse{}
			err := cc.client().get("/ledger/tax", "tax", tax)
			if err != nil {
				return err
			}

			return cc.print(tax, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Transfer: %d bp\nSell: %d bp\nBuy: %d bp\nFee recipient: %s\nBurn mode: %t\nStrategy version: %d\n",
					tax.Active.TransferBp, tax.Active.SellBp, tax.Active.BuyBp, tax.FeeRecipient, tax.BurnMode, tax.StrategyVersion)
				if tax.Pending != nil {
					_, _ = fmt.Fprintf(w, "Pending: transfer %d bp, sell %d bp, buy %d bp, effective at %d\n",
						tax.Pending.Rates.TransferBp, tax.Pending.Rates.SellBp, tax.Pending.Rates.BuyBp, tax.Pending.EffectiveAt)
				}
			})
		},
	}
}

func newMintCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mint",
		Short: "Query the mint window and the pending mint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mint := &api.MintResponse{}
			err := cc.client().get("/ledger/mint", "mint", mint)
			if err != nil {
				return err
			}

			return cc.print(mint, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Window start: %d\nMinted in window: %s\nCap per period: %s\n",
					mint.WindowStart, mint.MintedInWindow, mint.CapPerPeriod)
				if mint.Pending != nil {
					_, _ = fmt.Fprintf(w, "Pending: %s to %s, effective at %d\n",
						mint.Pending.Amount, mint.Pending.To, mint.Pending.EffectiveAt)
				}
			})
		},
	}
}

func newPoolsCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List the registered pool addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pools := make([]string, 0)
			err := cc.client().get("/ledger/pools", "pools", &pools)
			if err != nil {
				return err
			}

			return cc.print(pools, func(w io.Writer) {
				for _, pool := range pools {
					_, _ = fmt.Fprintln(w, pool)
				}
			})
		},
	}
}

func newCallCommand(cc *commandContext) *cobra.Command {
	var pemFile string
	var nonce uint64

	cmd := &cobra.Command{
		Use:   "call <caller> <function> [arguments...]",
		Short: "Execute a ledger function on behalf of the caller",
		Long: "Execute a ledger function on behalf of the caller. Arguments are bech32 addresses " +
			"or hex encoded big endian values. Functions changing the ledger must be signed with the " +
			"caller key loaded from --pem; the caller nonce is fetched from the node unless --nonce is set.",
		Example: `  ledgerclient call erd1alice... balanceOf erd1bob...
  ledgerclient call erd1alice... transfer erd1bob... 0de0b6b3a7640000 --pem alice.pem`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &api.CallRequest{
				Caller:    args[0],
				Function:  args[1],
				Arguments: args[2:],
			}

			if len(pemFile) > 0 {
				request.Nonce = nonce
				if !cmd.Flags().Changed("nonce") {
					account := &api.AccountResponse{}
					err := cc.client().get("/ledger/account/"+url.PathEscape(request.Caller), "account", account)
					if err != nil {
						return err
					}
					request.Nonce = account.Nonce
				}

				err := signCallRequest(pemFile, request)
				if err != nil {
					return err
				}
			}

			result := &api.CallResponse{}
			err := cc.client().post("/ledger/call", request, "result", result)
			if err != nil {
				return err
			}

			return cc.print(result, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Return code: %s\n", result.ReturnCode)
				if len(result.ReturnMessage) > 0 {
					_, _ = fmt.Fprintf(w, "Return message: %s\n", result.ReturnMessage)
				}
				if len(result.ReturnData) > 0 {
					_, _ = fmt.Fprintf(w, "Return data: %s\n", strings.Join(result.ReturnData, ", "))
				}
				for _, event := range result.Events {
					_, _ = fmt.Fprintf(w, "Event %s: %s\n", event.Identifier, strings.Join(event.Topics, ", "))
				}
			})
		},
	}
	cmd.Flags().StringVar(&pemFile, "pem", "", "PEM file holding the caller secret key, used to sign the call")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "Caller nonce to sign with, fetched from the node when not set")

	return cmd
}
