// Package config resolves run settings from flags, environment variables,
// an optional config file and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults match the classic mini-BLAST script.
const (
	DefaultQueryPath    = "query.txt"
	DefaultDatabasePath = "database.txt"
	DefaultOutPath      = "BLAST_OUTPUT.txt"
	DefaultSeedLength   = 4
	DefaultCutoff       = 5
	DefaultInputFormat  = "paragraph"
	DefaultFormat       = "text"
	DefaultEnvFile      = ".env"

	EnvPrefix = "MINIBLAST"
)

// Setting keys; they double as flag names.
const (
	KeyQuery           = "query"
	KeyDatabase        = "database"
	KeyOut             = "out"
	KeySeedLength      = "seed-length"
	KeyCutoff          = "cutoff"
	KeyInputFormat     = "input-format"
	KeyFormat          = "format"
	KeyNoHeader        = "no-header"
	KeyThreads         = "threads"
	KeyProgress        = "progress"
	KeyVerbose         = "verbose"
	KeyQuiet           = "quiet"
	KeyNoMatchExitCode = "no-match-exit-code"
)

// Settings is the decoded configuration.
type Settings struct {
	Query           string `mapstructure:"query"`
	Database        string `mapstructure:"database"`
	Out             string `mapstructure:"out"`
	SeedLength      int    `mapstructure:"seed-length"`
	Cutoff          int    `mapstructure:"cutoff"`
	InputFormat     string `mapstructure:"input-format"`
	Format          string `mapstructure:"format"`
	NoHeader        bool   `mapstructure:"no-header"`
	Threads         int    `mapstructure:"threads"`
	Progress        bool   `mapstructure:"progress"`
	Verbose         bool   `mapstructure:"verbose"`
	Quiet           bool   `mapstructure:"quiet"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`
}

// New returns a viper instance with defaults and environment binding set up.
// MINIBLAST_SEED_LENGTH and the short MINIBLAST_K both set the seed length.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyQuery, DefaultQueryPath)
	v.SetDefault(KeyDatabase, DefaultDatabasePath)
	v.SetDefault(KeyOut, DefaultOutPath)
	v.SetDefault(KeySeedLength, DefaultSeedLength)
	v.SetDefault(KeyCutoff, DefaultCutoff)
	v.SetDefault(KeyInputFormat, DefaultInputFormat)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyNoHeader, false)
	v.SetDefault(KeyThreads, 0)
	v.SetDefault(KeyProgress, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyNoMatchExitCode, 0)

	_ = v.BindEnv(KeySeedLength, EnvPrefix+"_SEED_LENGTH", EnvPrefix+"_K")
	return v
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment without overriding variables that are already set. An empty
// path means DefaultEnvFile, whose absence is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		err := godotenv.Load(DefaultEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// ReadFile merges a YAML/TOML/JSON config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	return v.ReadInConfig()
}

// Decode unmarshals the resolved settings.
func Decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
