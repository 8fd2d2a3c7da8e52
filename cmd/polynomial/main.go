package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options are the settings shared by all commands.
type options struct {
	logLevel string
	config   string
	// cfg is the loaded config file, if any.
	cfg      config
}

func newRootCommand() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "polynomial",
		Short: "Display, evaluate, and simplify sample polynomials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.before(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log messages above specified level: debug, info, warn (default), error, fatal or panic")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "Path of a TOML config file")
	root.AddCommand(
		demoCommand(),
		samplesCommand(),
		evalCommand(&opts),
		simplifyCommand(),
	)
	return root
}

func (o *options) before(cmd *cobra.Command) error {
	logrus.SetOutput(cmd.ErrOrStderr())
	var undecoded []string
	if o.config != "" {
		c, keys, err := loadConfig(o.config)
		if err != nil {
			return err
		}
		if c.LogLevel != "" && !cmd.Flag("log-level").Changed {
			o.logLevel = c.LogLevel
		}
		o.cfg = c
		undecoded = keys
	}
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level")
	}
	logrus.SetLevel(level)
	for _, k := range undecoded {
		logrus.Warnf("Unknown key %q in config file %s", k, o.config)
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
