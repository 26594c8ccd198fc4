package eglob_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tracy/tracy/pkg/eglob"
)

func TestStarMatchesEmpty(t *testing.T) {
	require.True(t, eglob.Match("*", ""))
	require.True(t, eglob.Match("*", "anything"))
	require.True(t, eglob.Match("foo_*", "foo_"))
	require.True(t, eglob.Match("foo_*", "foo_x"))
	require.False(t, eglob.Match("foo_*", "foo"))
}

func TestAlternationExactMembers(t *testing.T) {
	require.True(t, eglob.Match("a:b", "a"))
	require.True(t, eglob.Match("a:b", "b"))
	require.False(t, eglob.Match("a:b", "ab"))
	require.False(t, eglob.Match("a:b", "c"))
}

func TestGroupedAlternation(t *testing.T) {
	require.True(t, eglob.Match("a(b:c)d", "abd"))
	require.True(t, eglob.Match("a(b:c)d", "acd"))
	require.False(t, eglob.Match("a(b:c)d", "ad"))
	require.False(t, eglob.Match("a(b:c)d", "abcd"))
}

func TestEmptyAlternative(t *testing.T) {
	require.True(t, eglob.Match("a(b:)c", "abc"))
	require.True(t, eglob.Match("a(b:)c", "ac"))
	require.False(t, eglob.Match("a(b:)c", "abbc"))
}

func TestQuestionMarkRequiresCharacter(t *testing.T) {
	require.False(t, eglob.Match("?", ""))
	require.True(t, eglob.Match("?", "x"))
	require.True(t, eglob.Match("d???a", "dxyza"))
	require.False(t, eglob.Match("d???a", "dxya"))
}

func TestReadmeExamplePattern(t *testing.T) {
	pattern := "alpha:be(t:l)a:g*a:d???a:ep(x(xx:yy)y:z*z)silon:sig(ma:)"

	for _, s := range []string{
		"alpha", "beta", "bela", "ga", "gxxxxa", "dabca",
		"epxxxysilon", "epxyyysilon", "epzzzzsilon", "sigma", "sig",
	} {
		require.True(t, eglob.Match(pattern, s), s)
	}

	for _, s := range []string{"zzzzz", "d", "epsilon2", "sigmaa"} {
		require.False(t, eglob.Match(pattern, s), s)
	}
}

func TestFunctionFilterPatternFromSpecS3(t *testing.T) {
	pattern := "foo_*:bar_(alpha:beta)"

	for _, s := range []string{"foo_x", "foo_", "bar_alpha", "bar_beta"} {
		require.True(t, eglob.Match(pattern, s), s)
	}
	for _, s := range []string{"foo", "bar_gamma", "baz_alpha"} {
		require.False(t, eglob.Match(pattern, s), s)
	}
}
