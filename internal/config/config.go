package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr     string   `koanf:"addr"`
	Frontend Frontend `koanf:"frontend"`
	Wallet   Wallet   `koanf:"wallet"`
	CardLink CardLink `koanf:"cardlink"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Wallet holds the fixed budgeting parameters of the dashboard. The overall
// monthly budget is configuration, not derived from the budget table.
type Wallet struct {
	// MonthlyBudget is the global budget shown on the overview, in whole currency units.
	MonthlyBudget float64 `koanf:"monthlybudget"`
	// MonthWindow is how many months (current one included) the ledger view can navigate back.
	MonthWindow int `koanf:"monthwindow"`
}

type CardLink struct {
	// ConnectDelayMs simulates the latency of linking a card.
	ConnectDelayMs int `koanf:"connectdelayms"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Wallet: Wallet{
			MonthlyBudget: 1000,
			MonthWindow:   3,
		},
		CardLink: CardLink{
			ConnectDelayMs: 1500,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "WALLET_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "WALLET_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
