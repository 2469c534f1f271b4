// Package config is used to load the configuration file
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type account struct {
	Username  string `json:"username" mapstructure:"username"`
	Password  string `json:"password" mapstructure:"password"`
	AndroidID string `json:"android_id" mapstructure:"android_id"`
	LangCode  string `json:"lang_code" mapstructure:"lang_code"`
	Lang      string `json:"lang" mapstructure:"lang"`
}

type download struct {
	Proxy    string `json:"proxy" mapstructure:"proxy"`
	Insecure bool   `json:"insecure" mapstructure:"insecure"`
	OutDir   string `json:"out_dir" mapstructure:"out_dir"`
}

// Config is the configuration struct
type Config struct {
	Account  account  `json:"account" mapstructure:"account"`
	Download download `json:"download" mapstructure:"download"`
}

func (c *Config) verify() error {
	if c.Account.Username == "" {
		return fmt.Errorf("config: account username must be set")
	}
	if c.Account.AndroidID == "" {
		return fmt.Errorf("config: account android_id must be set")
	}
	if c.Account.LangCode == "" {
		c.Account.LangCode = "en_US"
	}
	if c.Account.Lang == "" {
		c.Account.Lang = "us"
	}
	return nil
}

// LoadConfig loads the configuration file
func LoadConfig() (*Config, error) {
	var c *Config

	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %v", err)
	}

	if err := c.verify(); err != nil {
		return nil, err
	}

	return c, nil
}
