package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sudipta/vrio-go/client"
	"github.com/sudipta/vrio-go/internal/config"
)

const defaultCommandTimeout = 30 * time.Second

// rootOptions are the persistent flags shared by every sub-command.
type rootOptions struct {
	baseURL string
	apiKey  string
	envFile string
	timeout time.Duration
	debug   bool
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "vrioctl",
		Short:         "vrioctl calls the Vrio customer, card and order API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger(cmd.ErrOrStderr())
			if opts.debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(zerolog.InfoLevel)
			}
			config.LoadDotEnv(opts.envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Vrio API base URL (default $VRIO_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "Vrio API key (default $VRIO_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultCommandTimeout, "Overall timeout for the command")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")

	rootCmd.AddCommand(newCreateCustomerCmd(opts))
	rootCmd.AddCommand(newGetCustomerCmd(opts))
	rootCmd.AddCommand(newAddCardCmd(opts))
	rootCmd.AddCommand(newListCardsCmd(opts))
	rootCmd.AddCommand(newCreateOrderCmd(opts))
	rootCmd.AddCommand(newGetOrderCmd(opts))

	return rootCmd
}

// newClient merges the environment with explicitly set flags.
func (o *rootOptions) newClient(cmd *cobra.Command) (*client.Client, error) {
	cfg, err := client.PartialConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = o.baseURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = o.apiKey
	}
	cfg.Debug = cfg.Debug || o.debug
	return client.New(cfg)
}

// run executes op under the command timeout and prints the envelope.
func (o *rootOptions) run(cmd *cobra.Command, name string, op func(context.Context, *client.Client) client.Result) error {
	c, err := o.newClient(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	start := time.Now()
	res := op(ctx, c)
	log.Debug().
		Str("operation", name).
		Int("code", res.Code).
		Bool("success", res.Success).
		Dur("elapsed", time.Since(start)).
		Msg("vrio call finished")

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !res.Success {
		return fmt.Errorf("%s failed (code %d): %s", name, res.Code, res.Message)
	}
	return nil
}

func newCreateCustomerCmd(opts *rootOptions) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "create-customer",
		Short: "Create a customer from a JSON payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(data, file)
			if err != nil {
				return err
			}
			return opts.run(cmd, "create-customer", func(ctx context.Context, c *client.Client) client.Result {
				return c.CreateCustomer(ctx, payload)
			})
		},
	}
	addPayloadFlags(cmd, &data, &file)
	return cmd
}

func newGetCustomerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-customer CUSTOMER_ID",
		Short: "Fetch a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.run(cmd, "get-customer", func(ctx context.Context, c *client.Client) client.Result {
				return c.GetCustomer(ctx, id)
			})
		},
	}
}

func newAddCardCmd(opts *rootOptions) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "add-card CUSTOMER_ID",
		Short: "Attach a card to a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			payload, err := readPayload(data, file)
			if err != nil {
				return err
			}
			return opts.run(cmd, "add-card", func(ctx context.Context, c *client.Client) client.Result {
				return c.AddCard(ctx, id, payload)
			})
		},
	}
	addPayloadFlags(cmd, &data, &file)
	return cmd
}

func newListCardsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-cards CUSTOMER_ID",
		Short: "List a customer's cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.run(cmd, "list-cards", func(ctx context.Context, c *client.Client) client.Result {
				return c.ListCards(ctx, id)
			})
		},
	}
}

func newCreateOrderCmd(opts *rootOptions) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "create-order",
		Short: "Create an order from a JSON payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(data, file)
			if err != nil {
				return err
			}
			return opts.run(cmd, "create-order", func(ctx context.Context, c *client.Client) client.Result {
				return c.CreateOrder(ctx, payload)
			})
		},
	}
	addPayloadFlags(cmd, &data, &file)
	return cmd
}

func newGetOrderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-order ORDER_ID",
		Short: "Fetch an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.run(cmd, "get-order", func(ctx context.Context, c *client.Client) client.Result {
				return c.GetOrder(ctx, id)
			})
		},
	}
}

func addPayloadFlags(cmd *cobra.Command, data, file *string) {
	cmd.Flags().StringVar(data, "data", "", "JSON payload")
	cmd.Flags().StringVar(file, "file", "", "Path to a file containing the JSON payload")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	cmd.MarkFlagsOneRequired("data", "file")
}

// readPayload decodes the payload keeping numbers verbatim.
func readPayload(data, file string) (any, error) {
	raw := []byte(data)
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		raw = b
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("payload is not valid JSON: unexpected data after the first value")
	}
	return v, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", raw)
	}
	return id, nil
}
