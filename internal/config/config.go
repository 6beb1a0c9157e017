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
	Store    Store    `koanf:"store"`
	Reminder Reminder `koanf:"reminder"`
	Timeline Timeline `koanf:"timeline"`
	View     View     `koanf:"view"`
}

type Store struct {
	BaseURL string `koanf:"baseurl"`
}

type Reminder struct {
	IntervalSeconds int `koanf:"intervalseconds"`
	// Notifier selects the notification capability: auto, desktop, terminal.
	Notifier string `koanf:"notifier"`
}

type Timeline struct {
	HourWidth int `koanf:"hourwidth"`
}

type View struct {
	Default string `koanf:"default"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Store: Store{
			BaseURL: "http://localhost:8000",
		},
		Reminder: Reminder{
			IntervalSeconds: 60,
			Notifier:        "auto",
		},
		Timeline: Timeline{
			HourWidth: 100,
		},
		View: View{
			Default: "day",
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
		Prefix: "CALSCHED_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "CALSCHED_")), "_", ".")
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
