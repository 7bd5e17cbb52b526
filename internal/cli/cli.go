// Package cli implements the nvp command-line interface.
//
// Credentials come from --config (a TOML file) or from PAYPAL_ variables,
// optionally loaded from a .env file in the working directory.
//
// Commands:
//   - decode: pretty-print a raw NVP response
//   - details: GetExpressCheckoutDetails for a token
//   - refund: RefundTransaction, full or partial
//   - profile: GetRecurringPaymentsProfileDetails
//   - manage: ManageRecurringPaymentsProfileStatus
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	paypal "github.com/stremovskyy/go-nvp"
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/profile"
	"github.com/stremovskyy/go-nvp/request"
	"github.com/stremovskyy/go-nvp/response"
)

var version = "dev"

// SetVersion sets the version printed by --version.
func SetVersion(v string) { version = v }

type globalFlags struct {
	config   string
	env      string
	endpoint string
	dryRun   bool
	verbose  bool
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "nvp",
		Short:         "Call and inspect the PayPal NVP API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&g.config, "config", "c", "", "TOML config file with the API profile")
	pf.StringVarP(&g.env, "env", "e", "", "environment: live, sandbox or beta-sandbox")
	pf.StringVar(&g.endpoint, "endpoint", "", "override the NVP endpoint url")
	pf.BoolVar(&g.dryRun, "dry-run", false, "print the request instead of sending it")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newDetailsCmd(g))
	root.AddCommand(newRefundCmd(g))
	root.AddCommand(newProfileCmd(g))
	root.AddCommand(newManageCmd(g))
	return root
}

func newDecodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode [raw]",
		Short: "Decode a raw NVP response (reads stdin when no argument is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				raw = string(b)
			}
			raw = strings.TrimSpace(raw)
			if raw == "" {
				return errors.New("nothing to decode")
			}
			env := response.Parse(raw)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), env)
			}
			printEnvelope(cmd.OutOrStdout(), env)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print pairs and errors as JSON")
	return cmd
}

func newDetailsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "details <token|return-query>",
		Short: "Get Express Checkout details for a token or a return url query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.NewGetExpressCheckoutDetails(args[0])
			if strings.Contains(args[0], "=") {
				var err error
				if req, err = request.NewGetExpressCheckoutDetailsFromReturn(args[0]); err != nil {
					return err
				}
			}
			client, runOpts, err := g.client(cmd)
			if err != nil {
				return err
			}
			resp, err := client.ExpressCheckout().GetDetails(cmd.Context(), req, runOpts...)
			return printResult(cmd, resp, err)
		},
	}
}

func newRefundCmd(g *globalFlags) *cobra.Command {
	var amount, currency, note, invoice string

	cmd := &cobra.Command{
		Use:   "refund <transaction-id>",
		Short: "Refund a transaction; partial when --amount is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.NewRefundTransaction(args[0])
			if amount != "" {
				cur, err := consts.ParseCurrency(currency)
				if err != nil {
					return err
				}
				req.SetPartial(amount, cur)
			}
			if note != "" {
				req.SetNote(note)
			}
			if invoice != "" {
				req.SetInvoiceID(invoice)
			}
			client, runOpts, err := g.client(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Transactions().Refund(cmd.Context(), req, runOpts...)
			return printResult(cmd, resp, err)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "partial refund amount")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency of --amount")
	cmd.Flags().StringVar(&note, "note", "", "note shown to the buyer")
	cmd.Flags().StringVar(&invoice, "invoice", "", "merchant invoice id")
	return cmd
}

func newProfileCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <profile-id>",
		Short: "Get recurring payments profile details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, runOpts, err := g.client(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Recurring().GetProfileDetails(cmd.Context(),
				request.NewGetRecurringPaymentsProfileDetails(args[0]), runOpts...)
			return printResult(cmd, resp, err)
		},
	}
}

func newManageCmd(g *globalFlags) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:       "manage <profile-id> <cancel|suspend|reactivate>",
		Short:     "Cancel, suspend or reactivate a recurring payments profile",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"cancel", "suspend", "reactivate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action, ok := consts.ParseProfileAction(args[1])
			if !ok {
				return fmt.Errorf("unknown action %q", args[1])
			}
			req := request.NewManageRecurringPaymentsProfileStatus(args[0], action)
			if note != "" {
				req.SetNote(note)
			}
			client, runOpts, err := g.client(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Recurring().ManageProfileStatus(cmd.Context(), req, runOpts...)
			return printResult(cmd, resp, err)
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note sent to the buyer")
	return cmd
}

// client builds an SDK client from the global flags. On --dry-run the run
// options print the request to the command output.
func (g *globalFlags) client(cmd *cobra.Command) (paypal.PayPal, []paypal.RunOption, error) {
	logger := loggerFromContext(cmd.Context())
	opts := []paypal.Option{paypal.WithLogger(sdkLogger{logger}), paypal.WithLogHTTPBodies(g.verbose)}

	if g.config != "" {
		logger.Debug("loading config", "path", g.config)
		opts = append(opts, paypal.WithConfigFile(g.config))
	} else {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("cannot load .env", "err", err)
		}
		p, env, err := profile.FromEnv()
		if err != nil {
			return nil, nil, fmt.Errorf("credentials: %w (use --config or set %s, %s and %s)", err,
				profile.EnvUsername, profile.EnvPassword, profile.EnvSignature)
		}
		opts = append(opts, paypal.WithProfile(p), paypal.WithEnvironment(env))
	}
	if g.env != "" {
		env, err := consts.ParseEnvironment(g.env)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, paypal.WithEnvironment(env))
	}
	if g.endpoint != "" {
		opts = append(opts, paypal.WithEndpointURL(g.endpoint))
	}

	client, err := paypal.NewClient(opts...)
	if err != nil {
		return nil, nil, err
	}

	var runOpts []paypal.RunOption
	if g.dryRun {
		out := cmd.OutOrStdout()
		runOpts = append(runOpts, paypal.DryRun(func(method, url, payload string) {
			printDryRun(out, method, url, payload)
		}))
	}
	return client, runOpts, nil
}

// enveloped is implemented by every typed response through its embedded
// *response.Envelope.
type enveloped interface {
	Raw() string
}

func printResult[R interface {
	*T
	enveloped
}, T any](cmd *cobra.Command, resp R, err error) error {
	if err != nil {
		return err
	}
	// Dry runs return no response.
	if resp == nil {
		return nil
	}
	env := response.Parse(resp.Raw())
	printEnvelope(cmd.OutOrStdout(), env)
	return env.Err()
}
