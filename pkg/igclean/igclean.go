// Package igclean validates Instagram links and strips the share-tracking
// segment Instagram appends after a literal "/?" token.
package igclean

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// NoTrackingFound is reported in Result.Removed when the input carried no
// "/?" segment.
const NoTrackingFound = "no tracking parameters found"

const trackingMarker = "/?"

var allowedHosts = map[string]struct{}{
	"instagram.com":     {},
	"www.instagram.com": {},
	"m.instagram.com":   {},
	"instagr.am":        {},
	"www.instagr.am":    {},
}

var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// Result describes a single cleaning call.
type Result struct {
	CleanURL    string `json:"cleanUrl"`
	Removed     string `json:"removed"`
	WasModified bool   `json:"wasModified"`
}

// AllowedHosts returns the recognised Instagram hostnames in sorted order.
func AllowedHosts() []string {
	hosts := make([]string, 0, len(allowedHosts))
	for host := range allowedHosts {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}

// IsValidInstagramURL reports whether candidate is an absolute URL whose
// hostname is one of the allow-listed Instagram hosts.
func IsValidInstagramURL(candidate string) bool {
	parsed, err := parseAbsolute(candidate)
	if err != nil {
		return false
	}
	_, ok := allowedHosts[strings.ToLower(parsed.Hostname())]
	return ok
}

// CleanInstagramURL drops everything from the first "/?" onwards and
// rebuilds the URL from its scheme, lower-cased hostname and the retained
// path. Port and fragment are always discarded. Callers are expected to
// validate first; an unparseable input yields a *ParseError.
func CleanInstagramURL(rawURL string) (Result, error) {
	parsed, err := parseAbsolute(rawURL)
	if err != nil {
		return Result{}, &ParseError{Input: rawURL, Err: err}
	}

	retained := parsed.EscapedPath()
	if parsed.RawQuery != "" || parsed.ForceQuery {
		retained += "?" + parsed.RawQuery
	}
	if idx := strings.Index(retained, trackingMarker); idx >= 0 {
		retained = retained[:idx]
	}

	result := Result{
		CleanURL: parsed.Scheme + "://" + strings.ToLower(parsed.Hostname()) + retained,
		Removed:  NoTrackingFound,
	}
	if idx := strings.Index(rawURL, trackingMarker); idx >= 0 {
		segment := rawURL[idx+len(trackingMarker):]
		result.Removed = trackingMarker + segment
		result.WasModified = segment != ""
	}
	return result, nil
}

// ValidateAndClean runs the full check-then-clean flow on user input.
// Blank input yields (nil, nil): there is nothing to show and nothing wrong.
func ValidateAndClean(rawInput string) (*Result, error) {
	return validateAndClean(rawInput, IsValidInstagramURL, CleanInstagramURL)
}

func validateAndClean(rawInput string, validate func(string) bool, clean func(string) (Result, error)) (*Result, error) {
	input := strings.TrimSpace(rawInput)
	if input == "" {
		return nil, nil
	}
	if !validate(input) {
		return nil, ErrInvalidDomain
	}
	result, err := clean(input)
	if err != nil {
		return nil, &MalformedURLError{Err: err}
	}
	return &result, nil
}

// ExtractURL returns the first http(s) link found in free text, or "".
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}

func parseAbsolute(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errNotAbsolute
	}
	return parsed, nil
}
