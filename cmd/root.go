/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logger   = logrus.StandardLogger()
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofd",
	Short: "Finite difference model problems",
	Long: `
Finite difference solvers for two model problems:

gofd 2D   relaxes a Laplace or Poisson problem on a rectangle with SOR
gofd 1D   transports a pulse with the upwind, central and implicit schemes

Defaults for any flag can be placed in the config file under the command
name, for example

2D:
  omega: 1.8
`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup(cmd) },
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("gofd failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gofd.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the working directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug detail")
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logger.WithError(err).Fatal("unable to locate home directory")
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gofd")
	}
	viper.SetEnvPrefix("GOFD")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		logger.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	} else if cfgFile != "" {
		logger.WithError(err).Fatal("unable to read config file")
	}
}

// setup applies --verbose and --profile, persistent flags are merged into cmd.Flags().
func setup(cmd *cobra.Command) (err error) {
	var (
		verbose bool
		prof    string
	)
	if verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if prof, err = cmd.Flags().GetString("profile"); err != nil {
		return
	}
	switch prof {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		err = fmt.Errorf("unknown profile %q, must be cpu or mem", prof)
	}
	return
}

// bindFlags exposes every flag of cmd to viper as "<prefix>.<flag>", so the
// config file can hold per command defaults.
func bindFlags(prefix string, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := viper.BindPFlag(prefix+"."+f.Name, f); err != nil {
			panic(err)
		}
	})
}
