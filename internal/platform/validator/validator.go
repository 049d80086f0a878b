// internal/platform/validator/validator.go
package validator

import (
	"net/url"
	"regexp"
	"strings"
)

// Account name validators

var nameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsNameChar reporta si r pertenece al alfabeto de nombres de cuenta [A-Za-z0-9_].
func IsNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

// IsAccountName verifica alfabeto y longitud [min, max] de un nombre.
func IsAccountName(name string, min, max int) bool {
	if !MinLength(name, min) || !MaxLength(name, max) {
		return false
	}
	return nameRegex.MatchString(name)
}

// Identifier validators

// IsHex verifica que s contenga solo dígitos hexadecimales.
func IsHex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// NormalizeHexID normaliza un identificador a hex minúscula sin guiones.
func NormalizeHexID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	return strings.ReplaceAll(id, "-", "")
}

// IsFullUUID verifica que id, ya normalizado, tenga los 32 dígitos de un UUID.
func IsFullUUID(id string) bool {
	return len(id) == 32 && IsHex(id)
}

// URL validators

// IsURL verifica si un string es una URL válida.
func IsURL(urlStr string) bool {
	if len(urlStr) == 0 {
		return false
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	// Debe tener scheme y host
	return parsed.Scheme != "" && parsed.Host != ""
}

// IsProxyURL acepta http, https y socks5 (con host).
func IsProxyURL(urlStr string) bool {
	if !IsURL(urlStr) {
		return false
	}
	parsed, _ := url.Parse(urlStr)
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "socks5", "socks5h":
		return true
	default:
		return false
	}
}

// NormalizeEndpoint quita espacios y la barra final de un endpoint base.
func NormalizeEndpoint(urlStr string) string {
	return strings.TrimRight(strings.TrimSpace(urlStr), "/")
}

// Generic validators

// IsEmpty verifica si un string está vacío o solo contiene espacios.
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// MaxLength verifica que un string no exceda una longitud máxima.
func MaxLength(s string, max int) bool {
	return len(s) <= max
}

// MinLength verifica que un string tenga al menos una longitud mínima.
func MinLength(s string, min int) bool {
	return len(s) >= min
}
