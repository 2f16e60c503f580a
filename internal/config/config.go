package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		bindFlags(root.PersistentFlags())
	}
	setDefaults()
}

// bindFlags maps each dash-named CLI flag onto its underscore config key so
// flag values reach the viper accessors.
func bindFlags(flags *pflag.FlagSet) {
	bindFlag(KeyTemplatesDir, flags, "templates-dir")
	bindFlag(KeyBaseBranch, flags, "default-base-branch")
	bindFlag(KeyMaxDiffLines, flags, "max-diff-lines")
	bindFlag(KeyGitTimeout, flags, "git-timeout")
	bindFlag(KeyLogLevel, flags, "log-level")
	bindFlag(KeyHost, flags, "host")
	bindFlag(KeyPort, flags, "port")
}

func bindFlag(key string, flags *pflag.FlagSet, name string) {
	if f := flags.Lookup(name); f != nil {
		_ = viper.BindPFlag(key, f)
	}
}

func setDefaults() {
	viper.SetDefault(KeyTemplatesDir, "./templates")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyBaseBranch, "main")
	viper.SetDefault(KeyMaxDiffLines, 500)
	viper.SetDefault(KeyGitTimeout, "2m")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func TemplatesDir() string      { return viper.GetString(KeyTemplatesDir) }
func LogLevel() string          { return viper.GetString(KeyLogLevel) }
func DefaultBaseBranch() string { return viper.GetString(KeyBaseBranch) }
func MaxDiffLines() int         { return viper.GetInt(KeyMaxDiffLines) }
func GitTimeout() time.Duration { return viper.GetDuration(KeyGitTimeout) }
func Host() string              { return viper.GetString(KeyHost) }
func Port() int                 { return viper.GetInt(KeyPort) }
