package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inputform.app/inputform"
)

type Config struct {
	Theme   string         `json:"theme"`
	Options map[string]any `json:"options,omitempty"`
}

// FormOptions decodes the stored options over the defaults. overrides
// take precedence over the stored options, which are left unchanged.
func (s *Config) FormOptions(overrides map[string]any) (inputform.FormOptions, error) {
	m := make(map[string]any, len(s.Options)+len(overrides))
	for k, v := range s.Options {
		m[k] = v
	}
	for k, v := range overrides {
		m[k] = v
	}

	opts, err := inputform.OptionsFromMap(m)
	if err != nil {
		return inputform.FormOptions{}, fmt.Errorf("FormOptions: invalid options in config due to error %w", err)
	}

	return opts, nil
}

func GetAppConfig() (*Config, error) {
	path, err := appPath()
	if err != nil {
		return nil, fmt.Errorf("GetAppConfig: failed to access config path due to error %w", err)
	}

	cfgfile, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err := os.MkdirAll(filepath.Dir(path), 0700)
			if err != nil {
				return nil, fmt.Errorf("GetAppConfig: failed to create default path due to error %w", err)
			}

			// Set default config here
			conf := &Config{
				Theme: "System Default",
			}

			if err := conf.SaveAppConfig(); err != nil {
				return nil, fmt.Errorf("GetAppConfig: failed to create default config due to error %w", err)
			}

			return conf, nil
		}

		return nil, fmt.Errorf("GetAppConfig: failed to open config due to error %w", err)
	}
	defer cfgfile.Close()

	conf := &Config{}
	if err := json.NewDecoder(cfgfile).Decode(conf); err != nil {
		return nil, fmt.Errorf("GetAppConfig: failed to decode config due to error %w", err)
	}

	return conf, nil
}

func appPath() (string, error) {
	oscfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("appPath: failed to get config file due to error %w", err)
	}

	return filepath.Join(oscfg, "inputform", "settings.json"), nil
}

func (s *Config) SaveAppConfig() error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("SaveAppConfig: failed to marshal json due to error %w", err)
	}

	path, err := appPath()
	if err != nil {
		return fmt.Errorf("SaveAppConfig: failed to access config path due to error %w", err)
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("SaveAppConfig: failed save config due to error %w", err)
	}

	return nil
}
