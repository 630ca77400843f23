package params

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// each call builds an independent store, like a fresh process
func resetArgs(line string) *Store {
	return Normalize(strings.Fields(line))
}

func TestBoolArg(t *testing.T) {
	cases := []struct {
		args      string
		name      string
		withFalse bool
		withTrue  bool
	}{
		{"-STP", "-STP", true, true},
		{"-STP", "-fo", false, true},
		{"-STP", "-STPo", false, true},
		{"-STP=0", "-STP", false, false},
		{"-STP=1", "-STP", true, true},
		{"-STP=verbose", "-STP", true, true},
		{"-noSTP", "-STP", false, false},
		{"-noSTP=1", "-STP", false, false},
		{"-noSTP=0", "-STP", true, true},
		{"-STP -noSTP", "-STP", true, true},
		{"-STP=1 -noSTP=1", "-STP", true, true},
		{"-STP=0 -noSTP=0", "-STP", false, false},
		{"-noSTP=0 -STP=0", "-STP", false, false},
		{"--STP=1", "-STP", true, true},
		{"--noSTP=1", "-STP", false, false},
		{"-STP --noSTP", "-STP", true, true},
		{"-noSTP -STP", "-STP", true, true},
		{"", "-STP", false, true},
	}

	for _, c := range cases {
		s := resetArgs(c.args)
		assert.Equal(t, c.withFalse, s.GetBoolArg(c.name, false), "%q: GetBoolArg(%q, false)", c.args, c.name)
		assert.Equal(t, c.withTrue, s.GetBoolArg(c.name, true), "%q: GetBoolArg(%q, true)", c.args, c.name)
		assert.Equal(t, c.withFalse, s.HasFlag(c.name), "%q: HasFlag(%q)", c.args, c.name)
	}
}

func TestBoolArgPositiveWinsInAnyOrder(t *testing.T) {
	values := []string{"", "=0", "=1", "=yes"}
	for _, a := range values {
		for _, b := range []string{"", "=0", "=1"} {
			forward := resetArgs("-X" + a + " -noX" + b)
			backward := resetArgs("-noX" + b + " -X" + a)
			want := a != "=0"
			assert.Equal(t, want, forward.GetBoolArg("-X", !want), "-X%s -noX%s", a, b)
			assert.Equal(t, want, backward.GetBoolArg("-X", !want), "-noX%s -X%s", b, a)
		}
	}
}

func TestStringArg(t *testing.T) {
	cases := []struct {
		args string
		def  string
		out  string
	}{
		{"", "", ""},
		{"", "eleven", "eleven"},
		{"-STP -bar", "", ""},
		{"-STP -bar", "eleven", ""},
		{"-STP=", "", ""},
		{"-STP=", "eleven", ""},
		{"-STP=11", "", "11"},
		{"-STP=11", "eleven", "11"},
		{"-STP=eleven", "", "eleven"},
		{"-STP=eleven", "eleven", "eleven"},
		{"-STP=a=b", "", "a=b"},
		{"--STP=verbose --bar=1", "", "verbose"},
	}

	for _, c := range cases {
		actual := resetArgs(c.args).GetArg("-STP", c.def)
		assert.Equal(t, c.out, actual, "%q: GetArg(-STP, %q)", c.args, c.def)
	}
}

func TestIntArg(t *testing.T) {
	cases := []struct {
		args string
		name string
		def  int64
		out  int64
	}{
		{"", "-STP", 11, 11},
		{"", "-STP", 0, 0},
		{"-STP -bar", "-STP", 11, 0},
		{"-STP -bar", "-bar", 11, 0},
		{"-STP=11 -bar=12", "-STP", 0, 11},
		{"-STP=11 -bar=12", "-bar", 11, 12},
		{"-STP=NaN -bar=NotANumber", "-STP", 1, 0},
		{"-STP=NaN -bar=NotANumber", "-bar", 11, 0},
		{"-STP=-42", "-STP", 1, -42},
		{"-STP=12abc", "-STP", 1, 0},
		{"--STP=verbose --bar=1", "-bar", 0, 1},
		{"-STP=99999999999999999999", "-STP", 1, math.MaxInt64},
		{"-STP=-99999999999999999999", "-STP", 1, math.MinInt64},
	}

	for _, c := range cases {
		actual := resetArgs(c.args).GetIntArg(c.name, c.def)
		assert.Equal(t, c.out, actual, "%q: GetIntArg(%q, %d)", c.args, c.name, c.def)
	}
}

func TestIntArgTrimsWhitespace(t *testing.T) {
	s := Normalize([]string{"-STP= 7 ", "-bar=\t12\n"})
	assert.Equal(t, int64(7), s.GetIntArg("-STP", 0))
	assert.Equal(t, int64(12), s.GetIntArg("-bar", 0))
}

func TestDoubleDash(t *testing.T) {
	assert.True(t, resetArgs("--STP").GetBoolArg("-STP", false))

	for _, v := range []string{"", "=", "=0", "=1", "=11", "=verbose"} {
		single := resetArgs("-X" + v)
		double := resetArgs("--X" + v)
		assert.Equal(t, single.GetArg("-X", "def"), double.GetArg("-X", "def"), v)
		assert.Equal(t, single.GetIntArg("-X", 5), double.GetIntArg("-X", 5), v)
		assert.Equal(t, single.GetBoolArg("-X", false), double.GetBoolArg("-X", false), v)
		assert.Equal(t, single.Flags(), double.Flags(), v)
	}
}

func TestRepeatedFlagFirstWins(t *testing.T) {
	s := resetArgs("-connect=a -connect=b --connect=c")
	assert.Equal(t, "a", s.GetArg("-connect", ""))
	assert.Equal(t, []string{"a", "b", "c"}, s.GetArgs("-connect"))

	s = resetArgs("-STP=0 -STP=1")
	assert.False(t, s.GetBoolArg("-STP", true))

	s = resetArgs("-noSTP=0 -noSTP")
	assert.True(t, s.GetBoolArg("-STP", false))
}

func TestNegatedKeysAreLiteral(t *testing.T) {
	s := resetArgs("-noSTP=1")
	assert.False(t, s.IsSet("-STP"))
	assert.True(t, s.IsSet("-noSTP"))
	assert.Equal(t, "1", s.GetArg("-noSTP", ""))
	assert.Equal(t, "def", s.GetArg("-STP", "def"))
}

func TestNoPrefixWithOtherValueIsNotNegation(t *testing.T) {
	s := resetArgs("-notify=echo")
	assert.Equal(t, "echo", s.GetArg("-notify", ""))
	assert.True(t, s.GetBoolArg("-tify", true))
	assert.False(t, s.GetBoolArg("-tify", false))
	assert.True(t, s.GetBoolArg("-notify", false))

	s = resetArgs("-noX=yes")
	assert.True(t, s.GetBoolArg("-X", true))
	assert.False(t, s.GetBoolArg("-X", false))
}

func TestPositional(t *testing.T) {
	s := resetArgs("-a=1 run -b=2")
	assert.Equal(t, "1", s.GetArg("-a", ""))
	assert.False(t, s.IsSet("-b"))
	assert.Equal(t, []string{"run", "-b=2"}, s.Positional())

	s = resetArgs("-a -- -b")
	assert.True(t, s.IsSet("-a"))
	assert.False(t, s.IsSet("-b"))
	assert.Equal(t, []string{"-b"}, s.Positional())

	s = resetArgs("-a - -b")
	assert.Equal(t, []string{"-", "-b"}, s.Positional())

	assert.Nil(t, resetArgs("-a -b").Positional())
}

func TestNilStore(t *testing.T) {
	var s *Store
	assert.Equal(t, "eleven", s.GetArg("-STP", "eleven"))
	assert.Equal(t, int64(11), s.GetIntArg("-STP", 11))
	assert.True(t, s.GetBoolArg("-STP", true))
	assert.False(t, s.HasFlag("-STP"))
	assert.Nil(t, s.GetArgs("-STP"))
	assert.Nil(t, s.Flags())

	set, ok := s.SoftSetArg("-STP", "1")
	require.True(t, ok)
	assert.Equal(t, "1", set.GetArg("-STP", ""))
}

func TestSoftSetArg(t *testing.T) {
	s := resetArgs("-STP=1")

	same, ok := s.SoftSetArg("-STP", "2")
	assert.False(t, ok)
	assert.Equal(t, s, same)

	next, ok := s.SoftSetArg("-bar", "2")
	require.True(t, ok)
	assert.Equal(t, "2", next.GetArg("-bar", ""))
	assert.Equal(t, "1", next.GetArg("-STP", ""))
	assert.False(t, s.IsSet("-bar"), "original store must not change")
}

func TestSoftSetBoolArg(t *testing.T) {
	s := resetArgs("-noupnp")

	same, ok := s.SoftSetBoolArg("-upnp", true)
	assert.False(t, ok)
	assert.False(t, same.GetBoolArg("-upnp", true))

	next, ok := s.SoftSetBoolArg("-listen", false)
	require.True(t, ok)
	assert.Equal(t, "0", next.GetArg("-listen", ""))
	assert.False(t, next.GetBoolArg("-listen", true))

	next, ok = next.SoftSetBoolArg("-listen", true)
	assert.False(t, ok)
	assert.False(t, next.GetBoolArg("-listen", true))

	same, ok = s.SoftSetBoolArg("--upnp", true)
	assert.False(t, ok)
	assert.False(t, same.GetBoolArg("-upnp", true))

	same, ok = s.SoftSetBoolArg("upnp", true)
	assert.False(t, ok)
	assert.Equal(t, s, same)
}

func TestSoftSetArgRejectsEquals(t *testing.T) {
	s := resetArgs("-STP=1")

	same, ok := s.SoftSetArg("-bar=x", "y")
	assert.False(t, ok)
	assert.Equal(t, s, same)
	assert.False(t, same.IsSet("-bar"))

	_, ok = s.SoftSetBoolArg("-bar=1", true)
	assert.False(t, ok)
}

func TestConcurrentReads(t *testing.T) {
	s := resetArgs("-STP=11 -noupnp -bar=x")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.GetIntArg("-STP", 0) != 11 || s.GetBoolArg("-upnp", true) || s.GetArg("-bar", "") != "x" {
				t.Errorf("unexpected concurrent read")
			}
		}()
	}
	wg.Wait()
}
