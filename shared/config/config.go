package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/itchan-dev/filestate/shared/utils"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	HttpAddr       string        `yaml:"http_addr" validate:"required"`
	LogLevel       string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON        bool          `yaml:"log_json"`
	SecureHeaders  bool          `yaml:"secure_headers"` // set HSTS when served over https
	AllowedOrigins []string      `yaml:"allowed_origins"`
	TokenTTL       time.Duration `yaml:"token_ttl"` // lifetime of tokens minted for producers, 0 never expires
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"required"`
	MaxEventBytes  int64         `yaml:"max_event_bytes" validate:"required,gt=0"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key" validate:"required,min=16"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) TokenTTL() time.Duration {
	return s.Public.TokenTTL
}

func loadPath(configPath string, output interface{}) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}

	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	if err := utils.Validate(output); err != nil {
		return fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	if err := loadPath(path.Join(configFolder, "private.yaml"), &private); err != nil {
		return nil, err
	}

	return &Config{public, private}, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
