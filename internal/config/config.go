package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Import      ImportConfig      `mapstructure:"import"`
	Server      ServerConfig      `mapstructure:"server"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
	Export      ExportConfig      `mapstructure:"export"`
	Seed        SeedConfig        `mapstructure:"seed"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=sqlite3 mysql"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Host            string            `mapstructure:"host" validate:"required_if=Driver mysql"`
	Port            int               `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Database        string            `mapstructure:"database" validate:"required_if=Driver mysql"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"min=0"`
	ConnectAttempts uint              `mapstructure:"connect_attempts" validate:"min=1"`
}

type ImportConfig struct {
	Document       string `mapstructure:"document" validate:"required"`
	LiteralName    string `mapstructure:"literal_name" validate:"required,identifier"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
}

type ServerConfig struct {
	Port            int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS            CORSConfig `mapstructure:"cors"`
	StaticDirectory string     `mapstructure:"static_directory"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MaintenanceConfig struct {
	CategoryMerges []CategoryMergeConfig `mapstructure:"category_merges" validate:"dive"`
}

type CategoryMergeConfig struct {
	From string `mapstructure:"from" validate:"required"`
	To   string `mapstructure:"to" validate:"required,nefield=From"`
}

type ExportConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type SeedConfig struct {
	File string `mapstructure:"file"`
	// OnServe seeds the store from File each time the server starts.
	OnServe bool `mapstructure:"on_serve"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/trivia")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "questions.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "trivia")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.connect_attempts", 3)
	v.SetDefault("import.document", "index.html")
	v.SetDefault("import.literal_name", "FULL_QUESTIONS_DB")
	v.SetDefault("import.timeout_seconds", 30)
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:5000"})
	v.SetDefault("server.static_directory", ".")
	v.SetDefault("maintenance.category_merges", []map[string]string{
		{"from": "ثقافة عامة", "to": "معلومات عامة"},
		{"from": "تكنولوجيا", "to": "تقنية"},
	})
	v.SetDefault("export.directory", "export")
	v.SetDefault("seed.file", "seeds.yml")
	v.SetDefault("seed.on_serve", true)

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
