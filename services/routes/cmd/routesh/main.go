package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rmrobinson/routebook/services/routes"
	"github.com/rmrobinson/routebook/services/routes/document"
	"github.com/rmrobinson/routebook/services/routes/shell"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err == pflag.ErrHelp {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	v := viper.New()
	bindErrs := bindConfig(v, flags)

	logger, err := newLogger(v.GetString(logFileEnvVar), v.GetString(logLevelEnvVar))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	for _, err := range bindErrs {
		logger.Warn("unable to bind config",
			zap.Error(err),
		)
	}

	store := routes.NewStore(logger)
	persister := document.NewFilePersister(logger, afero.NewOsFs())

	sh := shell.New(logger, store, persister, os.Stdin, os.Stdout, os.Stderr)
	sh.SetPrompt(v.GetString(promptEnvVar))

	if path := v.GetString(dataEnvVar); len(path) > 0 {
		if err := sh.Load(path); err != nil {
			logger.Warn("unable to load initial routes",
				zap.String("path", path),
				zap.Error(err),
			)
			fmt.Fprintln(os.Stderr, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Unblock a pending read when interrupted.
	go func() {
		<-ctx.Done()
		os.Stdin.Close()
	}()

	logger.Info("starting shell")
	err = sh.Run(ctx)
	if ctx.Err() != nil {
		logger.Info("shell interrupted")
	} else if err != nil {
		logger.Error("shell stopped",
			zap.Error(err),
		)
	}
	logger.Info("shell exited")
}
