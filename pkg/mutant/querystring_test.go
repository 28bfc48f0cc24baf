package mutant

import (
	"testing"

	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryConfig(t *testing.T) *config.FuzzerConfig {
	return enabledConfig(t, func(c *config.FuzzerConfig) { c.FuzzQueryString = true })
}

func TestQueryStringMutantsValidResults(t *testing.T) {
	req := httpreq.MustNew("GET", "http://moth/?id=1&name=foo%20bar&flag")

	mutants := QueryStringFactory{}.Create(req, []string{"abc", "def"}, nil, false, queryConfig(t))

	assert.Equal(t, []string{
		"http://moth/?id=abc&name=foo%20bar&flag",
		"http://moth/?id=def&name=foo%20bar&flag",
		"http://moth/?id=1&name=abc&flag",
		"http://moth/?id=1&name=def&flag",
		"http://moth/?id=1&name=foo%20bar&flag=abc",
		"http://moth/?id=1&name=foo%20bar&flag=def",
	}, targets(mutants))

	assert.Equal(t, "name", mutants[2].Point().Name)
	assert.Equal(t, "foo bar", mutants[2].Point().Original)
}

func TestQueryStringMutantEncodesValue(t *testing.T) {
	req := httpreq.MustNew("GET", "http://moth/?id=1&b=2")

	mutants := QueryStringFactory{}.Create(req, []string{"a b&c"}, []int{0}, false, queryConfig(t))

	require.Len(t, mutants, 1)
	assert.Equal(t, "a+b%26c", mutants[0].EncodedValue())
	assert.Equal(t, "http://moth/?id=a+b%26c&b=2", mutants[0].TargetURI())
}

func TestQueryStringMutantsAppend(t *testing.T) {
	req := httpreq.MustNew("GET", "http://moth/?id=1")

	mutants := QueryStringFactory{}.Create(req, []string{"'"}, nil, true, queryConfig(t))

	require.Len(t, mutants, 1)
	assert.Equal(t, "1'", mutants[0].Value())
	assert.Equal(t, "http://moth/?id=1%27", mutants[0].TargetURI())
}

func TestQueryStringMutantsPrerequisites(t *testing.T) {
	req := httpreq.MustNew("GET", "http://moth/?id=1")
	assert.Empty(t, QueryStringFactory{}.Create(req, []string{"x"}, nil, false, config.Defaults()))
	assert.Empty(t, QueryStringFactory{}.Create(req, []string{"x"}, nil, false, nil))

	noQuery := httpreq.MustNew("GET", "http://moth/foo.htm")
	assert.Empty(t, QueryStringFactory{}.Create(noQuery, []string{"x"}, nil, false, queryConfig(t)))

	post := httpreq.MustNew("POST", "http://moth/?id=1")
	post.SetBody("a=1")
	assert.Empty(t, QueryStringFactory{}.Create(post, []string{"x"}, nil, false, queryConfig(t)))
}

func TestQueryStringMutantMessages(t *testing.T) {
	req := httpreq.MustNew("GET", "http://moth/?id=1&name=foo%20bar&flag")
	mutants := QueryStringFactory{}.Create(req, []string{"abc"}, []int{0}, false, queryConfig(t))
	require.Len(t, mutants, 1)
	m := mutants[0]

	assert.Equal(t, `The sent query string is: "id=abc&name=foo%20bar&flag".`, m.PrintValue())
	assert.Equal(t, `"http://moth/?id=abc&name=foo%20bar&flag", using HTTP method GET. The modified parameter was "id" in the query string, with value: "abc".`, m.Describe())
}

func TestQueryStringMutantImmutableTarget(t *testing.T) {
	req := httpreq.MustNew("GET", "http://moth/?id=1")
	mutants := QueryStringFactory{}.Create(req, []string{"abc"}, nil, false, queryConfig(t))
	require.Len(t, mutants, 1)

	err := mutants[0].SetTargetURI("http://other/?id=1")
	assert.ErrorIs(t, err, ErrImmutableTarget)
	assert.Equal(t, "http://moth/?id=abc", mutants[0].TargetURI())
}
