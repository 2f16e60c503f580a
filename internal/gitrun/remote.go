package gitrun

import (
	"context"
	"strings"

	vcsurl "github.com/gitsight/go-vcsurl"
)

// RemoteInfo describes the origin remote of the analyzed repository.
type RemoteInfo struct {
	URL  string `json:"url"`
	Host string `json:"host,omitempty"`
	Repo string `json:"repo,omitempty"`
}

// OriginInfo inspects remote.origin.url for diagnostics. Best-effort: a repo
// without an origin remote, or an unparseable URL, yields nil.
func (r Runner) OriginInfo(ctx context.Context, dir string) *RemoteInfo {
	out, err := r.Run(ctx, dir, "config", "--get", "remote.origin.url")
	if err != nil {
		return nil
	}
	url := strings.TrimSpace(out)
	if url == "" {
		return nil
	}
	info := &RemoteInfo{URL: url}
	if parsed, err := vcsurl.Parse(url); err == nil {
		info.Host = string(parsed.Host)
		info.Repo = parsed.FullName
	}
	return info
}
