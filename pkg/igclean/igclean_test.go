package igclean

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidInstagramURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "www", input: "https://www.instagram.com/p/ABC123/", want: true},
		{name: "apex", input: "https://instagram.com/p/ABC123", want: true},
		{name: "mobile", input: "https://m.instagram.com/reel/X", want: true},
		{name: "short", input: "http://instagr.am/p/X", want: true},
		{name: "short_www", input: "https://www.instagr.am/p/X", want: true},
		{name: "upper_case_host", input: "https://WWW.INSTAGRAM.COM/p/X/?x=1", want: true},
		{name: "with_port", input: "https://instagram.com:443/p/X", want: true},
		{name: "foreign_host", input: "https://twitter.com/foo", want: false},
		{name: "lookalike_suffix", input: "https://instagram.com.evil.net/p/X", want: false},
		{name: "lookalike_prefix", input: "https://notinstagram.com/p/X", want: false},
		{name: "other_subdomain", input: "https://about.instagram.com/", want: false},
		{name: "relative", input: "/p/ABC123", want: false},
		{name: "no_scheme", input: "instagram.com/p/ABC123", want: false},
		{name: "garbage", input: "not a url", want: false},
		{name: "bad_port", input: "https://instagram.com:port/p/X", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsValidInstagramURL(tc.input))
		})
	}
}

func TestCleanInstagramURL_ReelWithTracking(t *testing.T) {
	input := "https://www.instagram.com/reel/DMaaOuDK_Bk/?igsh=dHFkZW9ycmh1cnQz"

	got, err := CleanInstagramURL(input)
	require.NoError(t, err)
	require.Equal(t, "https://www.instagram.com/reel/DMaaOuDK_Bk", got.CleanURL)
	require.Equal(t, "/?igsh=dHFkZW9ycmh1cnQz", got.Removed)
	require.True(t, got.WasModified)
}

func TestCleanInstagramURL_NoTracking(t *testing.T) {
	got, err := CleanInstagramURL("https://instagram.com/p/ABC123")
	require.NoError(t, err)
	require.Equal(t, "https://instagram.com/p/ABC123", got.CleanURL)
	require.Equal(t, NoTrackingFound, got.Removed)
	require.Equal(t, "no tracking parameters found", got.Removed)
	require.False(t, got.WasModified)
}

func TestCleanInstagramURL_LowercasesHost(t *testing.T) {
	got, err := CleanInstagramURL("https://WWW.INSTAGRAM.COM/p/X/?x=1")
	require.NoError(t, err)
	require.Equal(t, "https://www.instagram.com/p/X", got.CleanURL)
	require.Equal(t, "/?x=1", got.Removed)
	require.True(t, got.WasModified)
}

func TestCleanInstagramURL_DropsPort(t *testing.T) {
	got, err := CleanInstagramURL("https://Instagram.com:443/p/X/?a=1")
	require.NoError(t, err)
	require.Equal(t, "https://instagram.com/p/X", got.CleanURL)
	require.Equal(t, "/?a=1", got.Removed)
	require.True(t, got.WasModified)
}

func TestCleanInstagramURL_DropsFragment(t *testing.T) {
	got, err := CleanInstagramURL("https://instagram.com/p/X#comments")
	require.NoError(t, err)
	require.Equal(t, "https://instagram.com/p/X", got.CleanURL)
	require.False(t, got.WasModified)
}

func TestCleanInstagramURL_KeepsPlainQuery(t *testing.T) {
	got, err := CleanInstagramURL("https://instagram.com/p/X?hl=en")
	require.NoError(t, err)
	require.Equal(t, "https://instagram.com/p/X?hl=en", got.CleanURL)
	require.Equal(t, NoTrackingFound, got.Removed)
	require.False(t, got.WasModified)
}

func TestCleanInstagramURL_EmptySegment(t *testing.T) {
	got, err := CleanInstagramURL("https://instagram.com/p/X/?")
	require.NoError(t, err)
	require.Equal(t, "https://instagram.com/p/X", got.CleanURL)
	require.Equal(t, "/?", got.Removed)
	require.False(t, got.WasModified)
}

func TestCleanInstagramURL_RootTracking(t *testing.T) {
	got, err := CleanInstagramURL("https://instagram.com/?igsh=abc")
	require.NoError(t, err)
	require.Equal(t, "https://instagram.com", got.CleanURL)
	require.Equal(t, "/?igsh=abc", got.Removed)
	require.True(t, got.WasModified)
}

func TestCleanInstagramURL_ParseError(t *testing.T) {
	for _, input := range []string{"", "not a url", "/p/X", "https://instagram.com:port/"} {
		_, err := CleanInstagramURL(input)
		require.Error(t, err, input)
		require.True(t, errors.Is(err, ErrParse), input)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), input)
		require.Equal(t, input, parseErr.Input)
	}
}

func TestCleanInstagramURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://www.instagram.com/reel/DMaaOuDK_Bk/?igsh=dHFkZW9ycmh1cnQz",
		"https://instagram.com/p/ABC123",
		"https://WWW.INSTAGRAM.COM/p/X/?x=1",
		"https://instagram.com/?igsh=abc",
		"https://instagram.com/p/X?hl=en",
		"https://instagram.com/p/X/?",
		"https://m.instagram.com/stories/user/123/?utm_source=ig_story_item_share#x",
		"https://instagr.am/p/%E2%9C%93/?igsh=1",
	}

	for _, input := range inputs {
		first, err := CleanInstagramURL(input)
		require.NoError(t, err, input)

		second, err := CleanInstagramURL(first.CleanURL)
		require.NoError(t, err, input)
		require.Equal(t, first.CleanURL, second.CleanURL, input)
		require.False(t, second.WasModified, input)
	}
}

func TestValidateAndClean(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			got, err := ValidateAndClean(input)
			require.NoError(t, err)
			require.Nil(t, got)
		}
	})

	t.Run("InvalidDomain", func(t *testing.T) {
		got, err := ValidateAndClean("https://twitter.com/foo")
		require.ErrorIs(t, err, ErrInvalidDomain)
		require.Nil(t, got)
		require.Equal(t, "please enter a valid Instagram URL", err.Error())
	})

	t.Run("Unparseable", func(t *testing.T) {
		_, err := ValidateAndClean("instagram.com/p/X")
		require.ErrorIs(t, err, ErrInvalidDomain)
	})

	t.Run("Cleaned", func(t *testing.T) {
		got, err := ValidateAndClean("  https://www.instagram.com/reel/DMaaOuDK_Bk/?igsh=dHFkZW9ycmh1cnQz \n")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "https://www.instagram.com/reel/DMaaOuDK_Bk", got.CleanURL)
		require.Equal(t, "/?igsh=dHFkZW9ycmh1cnQz", got.Removed)
		require.True(t, got.WasModified)
	})

	t.Run("Malformed", func(t *testing.T) {
		parseErr := &ParseError{Input: "x", Err: errors.New("boom")}
		got, err := validateAndClean("https://instagram.com/p/X",
			func(string) bool { return true },
			func(string) (Result, error) { return Result{}, parseErr },
		)
		require.Nil(t, got)
		require.ErrorIs(t, err, ErrMalformedURL)
		require.ErrorIs(t, err, ErrParse)
		require.Equal(t, "invalid URL format, please check the URL", err.Error())
	})
}

func TestExtractURL(t *testing.T) {
	require.Equal(t,
		"https://www.instagram.com/reel/X/?igsh=abc",
		ExtractURL("look at this https://www.instagram.com/reel/X/?igsh=abc lol"),
	)
	require.Equal(t, "http://instagr.am/p/Y", ExtractURL("http://instagr.am/p/Y"))
	require.Equal(t, "https://a.com/1", ExtractURL("first https://a.com/1 then https://b.com/2"))
	require.Equal(t,
		"https://www.instagram.com/reel/ABC/?igsh=xyz",
		ExtractURL("look <https://www.instagram.com/reel/ABC/?igsh=xyz>"),
	)
	require.Empty(t, ExtractURL("no links here"))
}

func TestAllowedHosts(t *testing.T) {
	hosts := AllowedHosts()
	require.Equal(t, []string{
		"instagr.am",
		"instagram.com",
		"m.instagram.com",
		"www.instagr.am",
		"www.instagram.com",
	}, hosts)

	hosts[0] = "changed"
	require.Equal(t, "instagr.am", AllowedHosts()[0])
}
