// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// The query engine distinguishes three hard failure kinds. Zero matches
// is not one of them: an empty result set is a successful search.

// SyntaxError reports a malformed query string. The offending fragment
// and its byte offset are always surfaced to the caller verbatim.
type SyntaxError struct {
	Fragment string
	Offset   int
	Reason   string
}

func (e *SyntaxError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("syntax error at offset %d near %q: %s", e.Offset, e.Fragment, e.Reason)
}

// ResolutionError reports a token that does not resolve against a fixed
// table: an unknown book abbreviation, an unparseable verse reference,
// an unknown special token, or an unsupported morphology code.
type ResolutionError struct {
	Token  string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q: %s", e.Token, e.Reason)
}

// ConfigurationError reports an invalid request-level configuration,
// such as an empty corpus selection or an empty relative-search
// inclusion set. It is raised before any store access.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}
