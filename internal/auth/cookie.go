package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SessionCookie builds the HTTP-only session cookie. With secure set the
// cookie uses SameSite=None so the cross-origin frontend can send it.
func SessionCookie(token string, secure bool) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTokenExpiry / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}

// ExpiredSessionCookie builds a cookie that clears the session client-side.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	c := SessionCookie("", secure)
	c.MaxAge = -1
	return c
}
