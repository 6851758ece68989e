package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// Solana and Tron addresses are both base58; Solana keys encode to
	// 32-44 characters and Tron addresses to 34.
	walletRe = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	// Solana signatures are base58, EVM-style hashes are 0x-prefixed hex.
	txHashRe = regexp.MustCompile(`^([1-9A-HJ-NP-Za-km-z]{43,88}|(0x)?[0-9a-fA-F]{64})$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wallet", validateWallet)
		_ = v.RegisterValidation("tx_hash", validateTxHash)
	}
}

// IsWallet reports whether s looks like a base58 wallet address.
func IsWallet(s string) bool {
	return walletRe.MatchString(s)
}

func validateWallet(fl validator.FieldLevel) bool {
	return IsWallet(fl.Field().String())
}

func validateTxHash(fl validator.FieldLevel) bool {
	return txHashRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if !f.IsNil() && f.Elem().Kind() == reflect.String {
				f.Elem().SetString(sanitize(f.Elem().String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
