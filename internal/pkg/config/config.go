package config

import (
	"os"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort string `yaml:"server_port"`
	BaseUrl    string `yaml:"base_url"`

	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	JWTKey string `yaml:"jwt_key"`

	// Business time is a fixed UTC offset, no DST. Changing this silently
	// moves every lateness threshold and week boundary.
	TimezoneOffsetHours int `yaml:"timezone_offset_hours"`

	MealAllowanceAmount int `yaml:"meal_allowance_amount"`

	IPIntelBaseUrl      string   `yaml:"ipintel_base_url"`
	IPIntelToken        string   `yaml:"ipintel_token"`
	IPIntelTimeoutSecs  int      `yaml:"ipintel_timeout_secs"`
	IPIntelCacheTTLMins int      `yaml:"ipintel_cache_ttl_mins"`
	TrustedISPNames     []string `yaml:"trusted_isp_names"`
	TrustedASNs         []string `yaml:"trusted_asns"`
}

// defaults are seeded on the struct before the YAML load so config.yaml can
// override them. conf default tags would win over the file instead.
func defaultConfig() Config {
	return Config{
		ServerPort:          ":8080",
		TimezoneOffsetHours: 7,
		MealAllowanceAmount: 50,
		IPIntelBaseUrl:      "https://ipinfo.io",
		IPIntelTimeoutSecs:  3,
		IPIntelCacheTTLMins: 60,
	}
}

// NewConfig loads config.yaml over the defaults and then applies
// environment/flag overrides (SHOPOPS_* variables) on top of it.
func NewConfig() (*Config, error) {
	c := defaultConfig()

	yamlFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "reading config.yaml")
	}

	if err = yaml.Unmarshal(yamlFile, &c); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config.yaml")
	}

	if err := conf.Parse(os.Args[1:], "SHOPOPS", &c); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, uerr := conf.Usage("SHOPOPS", &c)
			if uerr != nil {
				return nil, errors.Wrap(uerr, "generating config usage")
			}
			return nil, errors.New(usage)
		}
		return nil, errors.Wrap(err, "parsing config overrides")
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt_key")
	}

	return &c, nil
}
