package cmd

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/cexio/pkg/cmd/cmdutil"
	"github.com/c9s/cexio/pkg/envvar"
	"github.com/c9s/cexio/pkg/exchange/cex"
	"github.com/c9s/cexio/pkg/service"
)

var userConfig *cmdutil.Config

var RootCmd = &cobra.Command{
	Use:   "cexio",
	Short: "cex.io exchange client",
	Long:  "query markets and manage orders on cex.io",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dotenvFile := viper.GetString("dotenv")
		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				return errors.Wrapf(err, "can not load dotenv file %s", dotenvFile)
			}
		}

		var err error
		userConfig, err = cmdutil.LoadConfig(viper.GetString("config"))
		if err != nil {
			return err
		}
		userConfig.SetViperDefaults(viper.GetViper())

		setupLogging()
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "cexio.yaml", "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")

	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func setupLogging() {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if levelName, ok := envvar.String("LOG_LEVEL"); ok && levelName != "" {
		if level, err := log.ParseLevel(levelName); err == nil {
			logger.SetLevel(level)
		} else {
			log.WithError(err).Warnf("invalid LOG_LEVEL %q", levelName)
		}
	}

	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	environment := os.Getenv("CEXIO_ENV")
	switch environment {
	case "production", "prod":
		writer := &lumberjack.Logger{
			Filename:   path.Join("log", "access_log"),
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     28,
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}
}

func newExchange(ctx context.Context) (*cex.Exchange, error) {
	var persistenceConfig *cmdutil.PersistenceConfig
	if userConfig != nil {
		persistenceConfig = userConfig.Persistence
	}

	facade, err := cmdutil.NewPersistenceFacade(persistenceConfig)
	if err != nil {
		return nil, err
	}

	return cmdutil.NewExchange(ctx, viper.GetViper(), facade)
}

func newDatabase(ctx context.Context) (*service.DatabaseService, error) {
	return cmdutil.ConnectDatabase(ctx, viper.GetViper())
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
