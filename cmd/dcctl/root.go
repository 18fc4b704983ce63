package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/dragonchain-go/internal/adapter"
	"github.com/MKhiriev/dragonchain-go/internal/client"
	"github.com/MKhiriev/dragonchain-go/internal/config"
	"github.com/MKhiriev/dragonchain-go/internal/credentials"
	"github.com/MKhiriev/dragonchain-go/internal/logger"
	"github.com/MKhiriev/dragonchain-go/internal/signer"
	"github.com/MKhiriev/dragonchain-go/internal/utils"
	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries what every command needs. fs and environ are nil in
// production, which selects the OS filesystem and the process environment.
type app struct {
	out       io.Writer
	log       *logger.Logger
	fs        afero.Fs
	environ   map[string]string
	buildInfo models.AppBuildInfo

	verbose bool
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dcctl",
		Short:         "Signed requests against a Dragonchain node",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.log.SetLevel(zerolog.DebugLevel)
			}
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log resolution and requests at debug level")

	root.AddCommand(
		newResolveCommand(a),
		newStatusCommand(a),
		newTransactionCommand(a),
		newSignCommand(a),
		newVersionCommand(a),
	)

	return root
}

func (a *app) config(cmd *cobra.Command) (*config.StructuredConfig, error) {
	return config.Load(config.Sources{
		Flags:       cmd.Flags(),
		Environment: a.environ,
		Fs:          a.fs,
	})
}

func (a *app) client(cmd *cobra.Command) (*client.Client, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, err
	}
	return client.New(cmd.Context(), cfg.ClientOptions(a.fs, a.environ, a.log))
}

// printResponse writes resp and turns a non 2xx status into an error so
// the exit code reflects it.
func (a *app) printResponse(resp models.Response) error {
	if err := utils.WriteJSON(a.out, resp); err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("node responded with status %d", resp.Status)
	}
	return nil
}

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the chain id, endpoint and auth key id in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}

			res, err := resolve(cmd.Context(), cfg.Resolver(a.fs, a.environ, a.log), cfg)
			if err != nil {
				return err
			}
			return utils.WriteJSON(a.out, res)
		},
	}
}

// resolve fills what cfg leaves empty, in the same order as client.New. An
// endpoint given in cfg is never looked up.
func resolve(ctx context.Context, r *credentials.Resolver, cfg *config.StructuredConfig) (models.Resolution, error) {
	res := models.Resolution{ChainID: cfg.ChainID, Endpoint: cfg.Endpoint}

	var err error
	if res.ChainID == "" {
		if res.ChainID, err = r.ResolveChainID(ctx); err != nil {
			return models.Resolution{}, err
		}
	}
	if res.Endpoint == "" {
		if res.Endpoint, err = r.ResolveEndpoint(ctx, res.ChainID); err != nil {
			return models.Resolution{}, err
		}
	}
	if res.Credentials, err = r.ResolveCredentials(ctx, res.ChainID); err != nil {
		return models.Resolution{}, err
	}

	return res, nil
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get the status of the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			resp, err := c.GetStatus(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
}

func newTransactionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"txn"},
		Short:   "Get or create transactions",
	}

	get := &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Get a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			resp, err := c.GetTransaction(cmd.Context(), models.GetTransactionRequest{TransactionID: args[0]})
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}

	var tag, callbackURL string
	create := &cobra.Command{
		Use:   "create TRANSACTION_TYPE PAYLOAD",
		Short: "Create a transaction",
		Long: `create posts a single transaction. A PAYLOAD holding valid JSON is
sent as JSON, anything else is sent as a string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			resp, err := c.CreateTransaction(cmd.Context(), models.CreateTransactionRequest{
				TransactionType: args[0],
				Payload:         payload(args[1]),
				Tag:             tag,
				CallbackURL:     callbackURL,
			})
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
	create.Flags().StringVar(&tag, "tag", "", "Searchable tag")
	create.Flags().StringVar(&callbackURL, "callback-url", "", "URL called once the transaction is in a block")

	cmd.AddCommand(get, create)
	return cmd
}

// payload keeps valid JSON as is.
func payload(arg string) any {
	if json.Valid([]byte(arg)) {
		return json.RawMessage(arg)
	}
	return arg
}

// signOutput is everything needed to reproduce a request by hand.
type signOutput struct {
	ChainID       string `json:"chainId"`
	Timestamp     string `json:"timestamp"`
	ContentType   string `json:"contentType,omitempty"`
	Canonical     string `json:"canonical"`
	Authorization string `json:"authorization"`
}

func newSignCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sign METHOD PATH [BODY]",
		Short: "Print the headers that sign a request without sending it",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}

			resolver := cfg.Resolver(a.fs, a.environ, a.log)
			chainID := cfg.ChainID
			if chainID == "" {
				if chainID, err = resolver.ResolveChainID(cmd.Context()); err != nil {
					return err
				}
			}
			creds, err := resolver.ResolveCredentials(cmd.Context(), chainID)
			if err != nil {
				return err
			}

			cc, err := signer.NewCredentialContext(chainID, creds, signer.Algorithm(cfg.Algorithm))
			if err != nil {
				return err
			}

			req := signer.Request{
				Method:    strings.ToUpper(args[0]),
				Path:      args[1],
				Timestamp: signer.NewTimestampGenerator().Next(),
			}
			if len(args) == 3 && args[2] != "" {
				req.Body = []byte(args[2])
				req.ContentType = adapter.ContentTypeJSON
			}

			s := signer.New(cc)
			return utils.WriteJSON(a.out, signOutput{
				ChainID:       chainID,
				Timestamp:     req.Timestamp,
				ContentType:   req.ContentType,
				Canonical:     s.CanonicalMessage(req),
				Authorization: s.AuthorizationHeader(req),
			})
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.WriteJSON(a.out, a.buildInfo)
		},
	}
}
