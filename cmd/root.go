// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package cmd implements the shkin command tree: one command per Kinesis
// Data Streams and Security Hub API operation.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/awslabs/shkin/hub"
	"github.com/awslabs/shkin/session"
	"github.com/awslabs/shkin/stream"
	"github.com/cheggaaa/pb"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Clients hands out the service clients used by commands.
// *session.Session satisfies it.
type Clients interface {
	Kinesis(ctx context.Context) (stream.KDS, error)
	SecurityHub(ctx context.Context) (hub.Hub, error)
}

// app carries what every command needs: settings, clients and the
// process streams.
type app struct {
	v          *viper.Viper
	log        *log.Logger
	clients    Clients
	session    *session.Session
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
}

func newApp(clients Clients, in io.Reader, out, errOut io.Writer) *app {
	logger := log.New()
	logger.SetOutput(errOut)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return &app{
		v:       viper.New(),
		log:     logger,
		clients: clients,
		in:      in,
		out:     out,
		errOut:  errOut,
		isTerminal: func() bool {
			f, ok := in.(*os.File)
			return ok && term.IsTerminal(int(f.Fd()))
		},
	}
}

// Execute runs the command line and exits with the code matching the
// outcome. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	root := NewRootCmd(newApp(nil, os.Stdin, os.Stdout, os.Stderr))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var pf *PartialFailureError
	if errors.As(err, &pf) {
		return 2
	}
	return 1
}

// NewRootCmd builds the command tree around a.
func NewRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "shkin",
		Short:         "Command line access to Kinesis Data Streams and Security Hub",
		Long:          "shkin exposes every Kinesis Data Streams and Security Hub API operation as a command, with automatic pagination, confirmation prompts for destructive operations and JSON, YAML or text output.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.shkin.yaml)")
	flags.String("env-file", "", "load KEY=VALUE pairs from this file into the environment")
	flags.String("region", "", "AWS region")
	flags.String("profile", "", "shared config profile")
	flags.String("endpoint-url", "", "override the service endpoint")
	flags.String("access-key", "", "static access key id")
	flags.String("secret-key", "", "static secret access key")
	flags.String("session-token", "", "static session token")
	flags.Int("max-attempts", 0, "maximum attempts per API call, 0 uses the SDK default")
	flags.Duration("timeout", 10*time.Minute, "maximum time a command may run")
	flags.StringP("output", "o", "json", "output format: json, yaml or text")
	flags.String("select", "", "project the response: '*' for all, '-' for nothing, '^flag' for a parameter or a gjson path")
	flags.Bool("humanize", false, "render timestamps relative to now in text output")
	flags.Bool("force", false, "never prompt for confirmation")
	flags.Bool("confirm", false, "prompt before every mutating operation")
	flags.Bool("fail-on-partial", false, "exit with code 2 when a batch operation partially fails")
	flags.String("log-level", "warn", "log level: panic, fatal, error, warn, info, debug or trace")
	flags.Int("concurrency", 4, "maximum concurrent calls for commands given several targets")

	a.v.SetEnvPrefix("SHKIN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(flags); err != nil {
		a.log.WithError(err).Fatal("could not bind root flags")
	}

	root.AddCommand(newKinesisCmd(a), newSecurityHubCmd(a))
	return root
}

// setup loads the environment and config file, applies the log level and
// creates the session. The session serves as clients unless others were
// injected.
func (a *app) setup() error {
	if f := a.v.GetString("env-file"); f != "" {
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	}
	if err := a.readConfig(); err != nil {
		return err
	}
	lvl, err := log.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	a.log.SetLevel(lvl)
	a.session = session.New(session.Settings{
		Region:       a.v.GetString("region"),
		Profile:      a.v.GetString("profile"),
		EndpointURL:  a.v.GetString("endpoint-url"),
		AccessKey:    a.v.GetString("access-key"),
		SecretKey:    a.v.GetString("secret-key"),
		SessionToken: a.v.GetString("session-token"),
		MaxAttempts:  a.v.GetInt("max-attempts"),
		Logger:       a.log,
	})
	if a.clients == nil {
		a.clients = a.session
	}
	return nil
}

func (a *app) readConfig() error {
	if f := a.v.GetString("config"); f != "" {
		a.v.SetConfigFile(f)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".shkin")
		a.v.SetConfigType("yaml")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	a.log.WithField("file", a.v.ConfigFileUsed()).Debug("using config file")
	return nil
}

// newBar starts a progress bar on errOut. Nothing is drawn unless errOut is
// a terminal.
func (a *app) newBar(total int) *pb.ProgressBar {
	bar := pb.New(total)
	bar.NotPrint = true
	if f, ok := a.errOut.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bar.Output = a.errOut
		bar.NotPrint = false
	}
	return bar.Start()
}

func (a *app) region() string {
	if a.session != nil {
		return a.session.Region()
	}
	return a.v.GetString("region")
}
