package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "ROUTES"

	logFileEnvVar  = "LOG_FILE"
	logLevelEnvVar = "LOG_LEVEL"
	dataEnvVar     = "DATA"
	promptEnvVar   = "PROMPT"
)

// configKeys maps each viper key to the flag that overrides it.
var configKeys = []struct {
	key  string
	flag string
}{
	{logFileEnvVar, "log-file"},
	{logLevelEnvVar, "log-level"},
	{dataEnvVar, "data"},
	{promptEnvVar, "prompt"},
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("routesh", pflag.ContinueOnError)
	flags.String("log-file", "routes.log", "file the diagnostic log is appended to")
	flags.String("log-level", "info", "minimum level of logged messages")
	flags.String("data", "", "route document to load on start")
	flags.String("prompt", ">>> ", "text shown before each command")
	return flags
}

// bindConfig binds every config key to its environment variable and flag.
// Keys that could not be bound are reported; the remaining keys are still bound.
func bindConfig(v *viper.Viper, flags *pflag.FlagSet) []error {
	v.SetEnvPrefix(envPrefix)

	var errs []error
	for _, ck := range configKeys {
		if err := v.BindEnv(ck.key); err != nil {
			errs = append(errs, errors.Wrapf(err, "binding env for %s", ck.key))
		}

		flag := flags.Lookup(ck.flag)
		if flag == nil {
			errs = append(errs, errors.Errorf("no flag %q for %s", ck.flag, ck.key))
			continue
		}
		if err := v.BindPFlag(ck.key, flag); err != nil {
			errs = append(errs, errors.Wrapf(err, "binding flag %s", ck.flag))
		}
	}
	return errs
}

// newLogger builds a JSON logger appending to the supplied file.
func newLogger(path string, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
