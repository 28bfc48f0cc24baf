package mutant

import (
	"testing"

	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"github.com/stretchr/testify/require"
)

func enabledConfig(t *testing.T, enable func(*config.FuzzerConfig)) *config.FuzzerConfig {
	t.Helper()
	cfg := config.Defaults()
	enable(cfg)
	require.NoError(t, cfg.Validate())
	return cfg
}

func targets(mutants []*Mutant) []string {
	out := make([]string, len(mutants))
	for i, m := range mutants {
		out[i] = m.TargetURI()
	}
	return out
}

func cookies(mutants []*Mutant) []string {
	out := make([]string, len(mutants))
	for i, m := range mutants {
		out[i] = m.Render().Cookie().String()
	}
	return out
}

func parse(t *testing.T, head, body string) *httpreq.Request {
	t.Helper()
	req, err := httpreq.Parse(head, body)
	require.NoError(t, err)
	return req
}
