// Package auth implements the browser half of the Microsoft auth-code flow:
// building the authorize URL and parsing the redirect URL the user pastes
// back. The token exchange and the Xbox/Minecraft auth chain happen in the
// native backend.
package auth

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"mcl/internal/domain"

	"github.com/google/uuid"
)

const (
	authorizeEndpoint = "https://login.live.com/oauth20_authorize.srf"
	redirectURI       = "https://login.live.com/oauth20_desktop.srf"
	scope             = "XboxLive.signin offline_access"
)

// Flow tracks one sign-in attempt. The state parameter is ephemeral and
// never persisted; a new AuthorizeURL call starts a fresh attempt.
type Flow struct {
	clientID string

	mu    sync.Mutex
	state string
}

// NewFlow creates a sign-in flow for the given OAuth client id.
func NewFlow(clientID string) *Flow {
	return &Flow{clientID: clientID}
}

// AuthorizeURL returns the browser URL that starts the sign-in, generating
// a fresh state value for this attempt.
func (f *Flow) AuthorizeURL() string {
	state := uuid.NewString()

	f.mu.Lock()
	f.state = state
	f.mu.Unlock()

	q := url.Values{}
	q.Set("client_id", f.clientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", scope)
	q.Set("state", state)
	q.Set("prompt", "select_account")

	return authorizeEndpoint + "?" + q.Encode()
}

// ParseRedirect extracts the authorization code from the redirect URL the
// user pasted after signing in. It accepts a bare code, surfaces provider
// errors, and rejects state values from an older attempt.
func (f *Flow) ParseRedirect(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrEmptyRedirectURL
	}

	if errParam, ok := queryParam(raw, "error"); ok {
		desc, _ := queryParam(raw, "error_description")
		if desc != "" {
			return "", fmt.Errorf("sign-in failed: %s: %s", errParam, desc)
		}
		return "", fmt.Errorf("sign-in failed: %s", errParam)
	}

	code, ok := queryParam(raw, "code")
	if !ok {
		return "", domain.ErrNoAuthCode
	}

	f.mu.Lock()
	expected := f.state
	f.state = ""
	f.mu.Unlock()

	// Best-effort state validation: only reject on an actual mismatch so a
	// pasted bare code (no state present) still works.
	if got, ok := queryParam(raw, "state"); ok && expected != "" && got != expected {
		return "", domain.ErrAuthStateMismatch
	}

	return code, nil
}

// queryParam pulls a query parameter out of a pasted URL. The input is user
// clipboard content, so this is deliberately forgiving: a raw code with no
// URL structure is accepted for the "code" key, and fragments are ignored.
func queryParam(input, key string) (string, bool) {
	if key == "code" && !strings.Contains(input, "?") && !strings.Contains(input, "code=") {
		trimmed := strings.TrimSpace(input)
		if len(trimmed) >= 8 {
			return trimmed, true
		}
	}

	s := strings.TrimSpace(input)
	if hash := strings.Index(s, "#"); hash >= 0 {
		s = s[:hash]
	}
	qpos := strings.Index(s, "?")
	if qpos < 0 {
		return "", false
	}

	for _, part := range strings.Split(s[qpos+1:], "&") {
		k, v, _ := strings.Cut(part, "=")
		if strings.EqualFold(k, key) {
			decoded, err := url.QueryUnescape(v)
			if err != nil {
				return "", false
			}
			return decoded, true
		}
	}
	return "", false
}
