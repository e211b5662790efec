package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agroclima/agroclima-api/internal/domain"
)

// CookieName is the client-side key for the session cookie.
const CookieName = "agroclima_session"

// Manager mints and verifies the signed session cookie. The cookie value
// is "<uuid>.<hex hmac-sha256(uuid, secret)>"; a bad signature is treated
// the same as no cookie at all.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Resolve returns the request's session ID, minting a new one (and setting
// the cookie on the response) when the request carries none or a tampered one.
func (m *Manager) Resolve(w http.ResponseWriter, r *http.Request) domain.SessionID {
	if c, err := r.Cookie(CookieName); err == nil {
		if id, ok := m.Decode(c.Value); ok {
			return id
		}
	}

	id := domain.SessionID(uuid.NewString())
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.Encode(id),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Encode signs a session ID into a cookie value.
func (m *Manager) Encode(id domain.SessionID) string {
	return string(id) + "." + m.sign(string(id))
}

// Decode verifies a cookie value and extracts its session ID.
func (m *Manager) Decode(value string) (domain.SessionID, bool) {
	i := strings.LastIndex(value, ".")
	if i <= 0 {
		return "", false
	}
	id, sig := value[:i], value[i+1:]
	if !hmac.Equal([]byte(sig), []byte(m.sign(id))) {
		return "", false
	}
	return domain.SessionID(id), true
}

func (m *Manager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}
