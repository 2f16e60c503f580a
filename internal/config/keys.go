package config

const (
	KeyTemplatesDir = "templates_dir"
	KeyLogLevel     = "log_level"
	KeyBaseBranch   = "default_base_branch"
	KeyMaxDiffLines = "max_diff_lines"
	KeyGitTimeout   = "git_timeout"
	KeyHost         = "host"
	KeyPort         = "port"
)
