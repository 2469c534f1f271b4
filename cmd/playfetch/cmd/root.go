/*
Copyright © 2024 playfetch authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/playfetch/playfetch/internal/config"
	"github.com/playfetch/playfetch/pkg/playstore"
)

var (
	cfgFile string
	// Verbose boolean flag for verbose logging
	Verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playfetch",
	Short: "Download apks (and their expansion files and split apks) from the Play Store",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihander.Default)

	cobra.OnInitialize(initConfig)

	// Flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/playfetch/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().String("proxy", "", "HTTP/HTTPS proxy")
	rootCmd.PersistentFlags().Bool("insecure", false, "do not verify ssl certs")
	viper.BindPFlag("download.proxy", rootCmd.PersistentFlags().Lookup("proxy"))
	viper.BindPFlag("download.insecure", rootCmd.PersistentFlags().Lookup("insecure"))
	// Settings
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in ~/.config/playfetch with name "config" (without extension).
		viper.AddConfigPath(filepath.Join(home, ".config", "playfetch"))
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("playfetch")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	}

	if Verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// newClient loads the configuration, prompts for any missing credential and
// performs the login. Every subcommand goes through here so no authenticated
// call can ever run without a session.
func newClient(cmd *cobra.Command) (*playstore.Client, *config.Config, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if conf.Account.Password == "" {
		prompt := &survey.Password{
			Message: "Please type your account password:",
		}
		if err := survey.AskOne(prompt, &conf.Account.Password); err != nil {
			if err == terminal.InterruptErr {
				log.Warn("Exiting...")
				os.Exit(0)
			}
			return nil, nil, err
		}
	}

	client := playstore.NewClient(&playstore.Config{
		Username:  conf.Account.Username,
		Password:  conf.Account.Password,
		AndroidID: conf.Account.AndroidID,
		LangCode:  conf.Account.LangCode,
		Lang:      conf.Account.Lang,
	}, conf.Download.Proxy, conf.Download.Insecure)

	if err := client.Login(cmd.Context()); err != nil {
		return nil, nil, err
	}

	return client, conf, nil
}
