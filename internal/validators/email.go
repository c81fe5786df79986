package validators

import (
	"net"
	"strings"

	"github.com/p0rkchop/ward-sub000/internal/httperr"
)

// CheckEmailDomain verifies that a registration address carries a
// resolvable mail domain. MX is preferred; a bare A/AAAA record is
// accepted for hosts that receive mail themselves.
func CheckEmailDomain(email string) error {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return httperr.ErrValidationField("email", "email must contain a domain")
	}

	host := email[at+1:]

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return nil
	}
	if ips, err := net.LookupIP(host); err == nil && len(ips) > 0 {
		return nil
	}

	return httperr.ErrValidationField("email", "email domain does not resolve")
}
