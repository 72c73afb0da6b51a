package main

import (
	"flag"

	"github.com/BurntSushi/toml"
	"github.com/katelinlis/FriendState/internal/app/apiserver"
	"github.com/sirupsen/logrus"
)

var (
	configPath string
)

func init() {
	flag.StringVar(&configPath, "config-path", "configs/apiserver.toml", "path to config file")
}

func main() {
	flag.Parse()
	config := apiserver.NewConfig()

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		logrus.Fatal(err)
	}

	if err := apiserver.Start(config); err != nil {
		logrus.Fatal(err)
	}
}
