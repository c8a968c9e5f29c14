// Package session mints the opaque identifiers clients use to scope their cart
// and order history. They are not credentials and never expire.
package session

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	prefix    = "session_"
	suffixLen = 9
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// New returns an id of the form session_<unix ms>_<9 base36 chars>.
func New() string {
	return NewAt(time.Now())
}

func NewAt(now time.Time) string {
	var b strings.Builder
	b.Grow(suffixLen)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < suffixLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return fmt.Sprintf("%s%d_%s", prefix, now.UnixMilli(), b.String())
}

// Valid reports whether id can scope cart and history calls. Any non-blank
// string is accepted so that ids minted by older clients keep working.
func Valid(id string) bool {
	return strings.TrimSpace(id) != ""
}
