// Package config carica la configurazione opzionale del traduttore da YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config è la configurazione opzionale di una traduzione. Tutte le voci
// hanno un default utilizzabile: un file vuoto è valido.
type Config struct {
	// Module sovrascrive il nome del modulo radice derivato dal file.
	Module string `yaml:"module"`
	// TypeOverrides aggiunge voci alla tabella statica dei nomi ben
	// noti; hanno precedenza sulle voci predefinite.
	TypeOverrides map[string]string `yaml:"typeOverrides"`
}

// Load legge e valida un file di configurazione YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for from, to := range cfg.TypeOverrides {
		if from == "" || to == "" {
			return nil, fmt.Errorf("invalid type override %q -> %q: empty name", from, to)
		}
	}
	return &cfg, nil
}
