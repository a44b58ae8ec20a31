package config

import (
	// Go Internal Packages
	"os"
	"strings"

	// External Packages
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

// Load reads the embedded defaults and overlays the file at path, when set.
func Load(path string) (*koanf.Koanf, Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(DefaultConfig), yaml.Parser()); err != nil {
		return nil, Config{}, err
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, Config{}, err
			}
		}
	}

	appKonf := Config{}
	if err := k.Unmarshal("", &appKonf); err != nil {
		return nil, Config{}, err
	}
	return k, LoadSecrets(appKonf), nil
}

// LoadSecrets Loads the secret variables and overrides the config
func LoadSecrets(k Config) Config {
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		k.Mongo.URI = mongoURI
	}

	if redisURI := os.Getenv("REDIS_URI"); redisURI != "" {
		k.Redis.URI = redisURI
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		k.Redis.Password = redisPassword
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		k.Kafka.Brokers = strings.Split(brokers, ",")
	}

	if prod := os.Getenv("IS_PROD_MODE"); prod != "" {
		k.IsProdMode = prod == "true"
	}
	return k
}
