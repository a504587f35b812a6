/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/suparena/sqlrecord/datastore/ddb"
	"github.com/suparena/sqlrecord/model"
	"gopkg.in/yaml.v3"
)

// DriverDynamoDB selects the DynamoDB PartiQL cursor instead of database/sql.
const DriverDynamoDB = "dynamodb"

// Drivers accepted in the driver setting.
var Drivers = []string{"sqlite", "postgres", "pgx", "mysql", DriverDynamoDB}

// Config describes the store a command connects to and the tables it reads.
type Config struct {
	Driver   string         `yaml:"driver"`
	DSN      string         `yaml:"dsn"`
	LogLevel string         `yaml:"log_level"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Tables   []TableConfig  `yaml:"tables"`
}

// DynamoDBConfig holds the connection settings used when Driver is "dynamodb".
type DynamoDBConfig struct {
	Region         string `yaml:"region"`
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	Endpoint       string `yaml:"endpoint"`
	ConsistentRead bool   `yaml:"consistent_read"`
}

// TableConfig declares a table without a Go type.
type TableConfig struct {
	Name       string         `yaml:"name"`
	Type       string         `yaml:"type"`
	PrimaryKey string         `yaml:"primary_key"`
	Columns    []ColumnConfig `yaml:"columns"`
}

// ColumnConfig declares one column. Type is a registry type name such as
// "int64" or "time.Time"; empty means the value is passed through unchanged.
type ColumnConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Defaults returns the configuration used when no file sets a value.
func Defaults() *Config {
	return &Config{
		Driver:   "sqlite",
		DSN:      ":memory:",
		LogLevel: "info",
	}
}

// Load reads the YAML file at path, when path is not empty, and applies
// environment overrides. Variables from a .env file in the working directory
// are used when the process environment does not set them. A nil getenv
// means os.Getenv.
func Load(path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	dotenv, err := readDotEnv(".env")
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(withFallback(getenv, dotenv))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return env, nil
}

func withFallback(getenv func(string) string, fallback map[string]string) func(string) string {
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback[key]
	}
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Driver, "SQLRECORD_DRIVER")
	set(&c.DSN, "SQLRECORD_DSN")
	set(&c.LogLevel, "SQLRECORD_LOG_LEVEL")
	set(&c.DynamoDB.AccessKey, "AWS_ACCESS_KEY")
	set(&c.DynamoDB.SecretKey, "AWS_SECRET_KEY")
	set(&c.DynamoDB.Region, "AWS_REGION")
	set(&c.DynamoDB.Endpoint, "AWS_DDB_ENDPOINT")
}

// Validate checks the driver settings and every table declaration.
func (c *Config) Validate() error {
	if !slices.Contains(Drivers, c.Driver) {
		return fmt.Errorf("config: unknown driver %q (want one of %s)", c.Driver, strings.Join(Drivers, ", "))
	}
	if c.Driver == DriverDynamoDB {
		if c.DynamoDB.Region == "" {
			return fmt.Errorf("config: dynamodb.region is required")
		}
	} else if c.DSN == "" {
		return fmt.Errorf("config: dsn is required for driver %q", c.Driver)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	_, err := c.Metas()
	return err
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Metas converts the table declarations to validated model metadata.
func (c *Config) Metas() ([]*model.Meta, error) {
	metas := make([]*model.Meta, 0, len(c.Tables))
	seen := make(map[string]struct{}, len(c.Tables))
	for i, t := range c.Tables {
		if _, dup := seen[t.Name]; dup {
			return nil, fmt.Errorf("config: tables[%d]: table %q declared twice", i, t.Name)
		}
		seen[t.Name] = struct{}{}

		meta := t.Meta()
		if err := meta.Validate(); err != nil {
			return nil, fmt.Errorf("config: tables[%d]: %w", i, err)
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

// Meta returns the table declaration as model metadata.
func (t TableConfig) Meta() *model.Meta {
	fields := make([]model.Field, len(t.Columns))
	for i, col := range t.Columns {
		fields[i] = model.Field{Name: col.Name, Type: col.Type}
	}
	return &model.Meta{
		Name:       t.Type,
		Table:      t.Name,
		PrimaryKey: t.PrimaryKey,
		Fields:     fields,
	}
}

// DynamoDBClientConfig returns the settings for ddb.NewDynamoDBClient.
func (c *Config) DynamoDBClientConfig() ddb.Config {
	return ddb.Config{
		AccessKey: c.DynamoDB.AccessKey,
		SecretKey: c.DynamoDB.SecretKey,
		Region:    c.DynamoDB.Region,
		Endpoint:  c.DynamoDB.Endpoint,
	}
}
