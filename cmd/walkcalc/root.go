package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set by the linker at build time.
var version = "dev"

// Output formats accepted by --output.
const (
	textOut = "text"
	jsonOut = "json"
	yamlOut = "yaml"
)

// newRootCmd builds the command tree. Each call gets its own viper instance
// so flags, env, and config file state never leak between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "walkcalc",
		Short:         "Estimate walking distance, time, cadence, and calories.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().String("config", "", "config file (default is ./.walkcalc.yaml or $HOME/.walkcalc.yaml)")
	root.PersistentFlags().String("output", textOut, "output format: text, json, or yaml")
	root.PersistentFlags().String("color", "yes", "colorize text output: yes or no")

	root.AddCommand(newCalcCmd(v), newPacesCmd(v), newVersionCmd())
	return root
}

// initConfig merges flags, WALKCALC_* environment variables, and the optional
// config file into v, then applies the color switch.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".walkcalc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("WALKCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	switch strings.ToLower(v.GetString("color")) {
	case "no", "false", "0":
		color.NoColor = true
	}

	switch out := v.GetString("output"); out {
	case textOut, jsonOut, yamlOut:
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", out)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of walkcalc.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("walkcalc CLI\n")
			cmd.Printf("  Version: %s\n", version)
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
