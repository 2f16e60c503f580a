package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "test"}
	root.PersistentFlags().String("templates-dir", "", "PR templates directory")
	root.PersistentFlags().String("default-base-branch", "main", "Default base branch for diffs")
	root.PersistentFlags().Int("max-diff-lines", 500, "Default maximum diff lines per response")
	root.PersistentFlags().Duration("git-timeout", 2*time.Minute, "Timeout per git invocation")
	root.PersistentFlags().String("log-level", "info", "Log level")
	return root
}

func TestInit_FlagsReachAccessors(t *testing.T) {
	t.Cleanup(viper.Reset)
	root := newTestRoot()
	if err := root.PersistentFlags().Set("templates-dir", "/custom/templates"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := root.PersistentFlags().Set("max-diff-lines", "200"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := root.PersistentFlags().Set("default-base-branch", "develop"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	Init(root)

	if got := TemplatesDir(); got != "/custom/templates" {
		t.Fatalf("flag --templates-dir ignored: TemplatesDir() = %q", got)
	}
	if got := MaxDiffLines(); got != 200 {
		t.Fatalf("flag --max-diff-lines ignored: MaxDiffLines() = %d", got)
	}
	if got := DefaultBaseBranch(); got != "develop" {
		t.Fatalf("flag --default-base-branch ignored: DefaultBaseBranch() = %q", got)
	}
}

func TestInit_DefaultsWithoutFlags(t *testing.T) {
	t.Cleanup(viper.Reset)
	Init(nil)
	if TemplatesDir() != "./templates" {
		t.Fatalf("unexpected default templates dir: %q", TemplatesDir())
	}
	if MaxDiffLines() != 500 {
		t.Fatalf("unexpected default max diff lines: %d", MaxDiffLines())
	}
	if GitTimeout() != 2*time.Minute {
		t.Fatalf("unexpected default git timeout: %s", GitTimeout())
	}
}

func TestInit_UnknownFlagSetTolerated(t *testing.T) {
	t.Cleanup(viper.Reset)
	root := &cobra.Command{Use: "bare"}
	Init(root)
	if LogLevel() != "info" {
		t.Fatalf("defaults must apply with no flags defined: %q", LogLevel())
	}
}
