package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

const (
	SessionBackendPostgres = "postgres"
	SessionBackendMongo    = "mongo"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpAddr       string        `yaml:"http_addr" validate:"required"`
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gt=0"`
	StoreTimeout   time.Duration `yaml:"store_timeout" validate:"gt=0"` // applied to every storage call of a request
	SessionCookie  string        `yaml:"session_cookie" validate:"required"`
	SessionBackend string        `yaml:"session_backend" validate:"oneof=postgres mongo"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	CSRF           bool          `yaml:"csrf"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	Families []domain.Family `yaml:"families" validate:"dive"`
	Kafka    Kafka           `yaml:"kafka"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Enabled is false when no brokers are configured; events are then dropped.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Private struct {
	Pg    Pg    `yaml:"pg"`
	Mongo Mongo `yaml:"mongo"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Mongo struct {
	Uri      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// reservedFamilyNames are top-level paths served outside any family.
var reservedFamilyNames = map[string]bool{
	"healthz": true,
	"metrics": true,
	"static":  true,
}

func defaultPublic() Public {
	return Public{
		HttpAddr:       ":8080",
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		StoreTimeout:   5 * time.Second,
		SessionCookie:  "session-id",
		SessionBackend: SessionBackendPostgres,
		CSRF:           true,
		LogLevel:       "info",
		Kafka:          Kafka{Topic: "coolfrog.events"},
	}
}

func loadPath(configPath string, output interface{}) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder, applies defaults and
// environment overrides, and validates the result.
func Load(configFolder string) (*Config, error) {
	public := defaultPublic()
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}
	if len(public.Families) == 0 {
		public.Families = domain.DefaultFamilies()
	}
	for i := range public.Families {
		if public.Families[i].Title == "" {
			public.Families[i].Title = public.Families[i].Name
		}
	}

	var private Private
	if err := loadPath(path.Join(configFolder, "private.yaml"), &private); err != nil {
		return nil, err
	}

	cfg := &Config{Public: public, Private: private}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("COOLFROG_HTTP_ADDR"); v != "" {
		c.Public.HttpAddr = v
	}
	if v := os.Getenv("COOLFROG_PG_PASSWORD"); v != "" {
		c.Private.Pg.Password = v
	}
	if v := os.Getenv("COOLFROG_MONGO_URI"); v != "" {
		c.Private.Mongo.Uri = v
	}
}

func (c *Config) validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seen := make(map[string]bool, len(c.Public.Families))
	for _, f := range c.Public.Families {
		if reservedFamilyNames[f.Name] {
			return fmt.Errorf("invalid config: family name %q is a reserved path", f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("invalid config: family %q declared twice", f.Name)
		}
		seen[f.Name] = true
	}

	if c.Public.SessionBackend == SessionBackendMongo && (c.Private.Mongo.Uri == "" || c.Private.Mongo.Database == "") {
		return fmt.Errorf("invalid config: mongo session backend needs mongo.uri and mongo.database")
	}
	return nil
}
