package httpreq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCookie(t *testing.T) {
	c := ParseCookie("foo=bar; spam=eggs")
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []CookiePair{{"foo", "bar"}, {"spam", "eggs"}}, c.Pairs())
	assert.Equal(t, "foo=bar; spam=eggs;", c.String())
}

func TestParseCookieEdgeCases(t *testing.T) {
	c := ParseCookie(" a=1;;b ; c=x=y; ")
	assert.Equal(t, []CookiePair{{"a", "1"}, {"b", ""}, {"c", "x=y"}}, c.Pairs())
	assert.Equal(t, "a=1; b=; c=x=y;", c.String())

	assert.Equal(t, 0, ParseCookie("").Len())
	assert.Equal(t, "", ParseCookie(" ; ").String())
}

func TestCookieDuplicateNames(t *testing.T) {
	c := ParseCookie("id=1; id=2")
	assert.True(t, c.SetValue(1, "x"))
	assert.Equal(t, "id=1; id=x;", c.String())

	v, ok := c.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	assert.False(t, c.SetValue(2, "y"))
	_, ok = c.Pair(-1)
	assert.False(t, ok)
}

func TestCookieCloneIsIndependent(t *testing.T) {
	c := ParseCookie("foo=bar")
	clone := c.Clone()
	clone.SetValue(0, "changed")

	assert.Equal(t, "foo=bar;", c.String())
	assert.Equal(t, "foo=changed;", clone.String())

	var nilCookie *Cookie
	assert.Nil(t, nilCookie.Clone())
	assert.Equal(t, 0, nilCookie.Len())
}
