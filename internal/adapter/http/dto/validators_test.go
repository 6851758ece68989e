package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

const (
	solWallet  = "So11111111111111111111111111111111111111112"
	tronWallet = "TXYZopYRdj2D9XRtbG411XZZ3kM5VkAeBf"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := ApplyBoostRequest{TokenMint: "  " + solWallet + "  ", Amount: 1}
	SanitizeStruct(&req)

	assert.Equal(t, solWallet, req.TokenMint)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := EventRequest{Kind: "<script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Kind, "&lt;script&gt;")
	assert.NotContains(t, req.Kind, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	s := "  daily "
	v := struct{ Kind *string }{Kind: &s}
	SanitizeStruct(&v)

	assert.Equal(t, "daily", *v.Kind)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom validator tests ---

func TestIsWallet(t *testing.T) {
	valid := []string{solWallet, tronWallet, strings.Repeat("1", 32)}
	for _, tc := range valid {
		assert.True(t, IsWallet(tc), "expected valid: %s", tc)
	}

	invalid := []string{
		"",
		"short",
		"0OIl" + strings.Repeat("1", 30), // characters outside base58
		strings.Repeat("1", 45),
		solWallet + " ",
	}
	for _, tc := range invalid {
		assert.False(t, IsWallet(tc), "expected invalid: %q", tc)
	}
}

func TestTxHash(t *testing.T) {
	valid := []string{
		strings.Repeat("ab", 32),
		"0x" + strings.Repeat("AB", 32),
		strings.Repeat("5", 88),
	}
	for _, tc := range valid {
		assert.True(t, txHashRe.MatchString(tc), "expected valid: %s", tc)
	}

	invalid := []string{
		"",
		"tx-1",
		"0x" + strings.Repeat("zz", 32),
		strings.Repeat("5", 89),
	}
	for _, tc := range invalid {
		assert.False(t, txHashRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestBindingTags(t *testing.T) {
	ok := ApplyBoostRequest{TokenMint: solWallet, Amount: 10, TxHash: strings.Repeat("ab", 32)}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	badMint := ApplyBoostRequest{TokenMint: "not-a-mint", Amount: 10}
	assert.Error(t, binding.Validator.ValidateStruct(&badMint))

	badHash := RepayRequest{Amount: 10, TxHash: "nope"}
	assert.Error(t, binding.Validator.ValidateStruct(&badHash))

	noHash := RedeemRequest{}
	assert.NoError(t, binding.Validator.ValidateStruct(&noHash))

	badType := ClaimRequest{ClaimType: "weekly"}
	assert.Error(t, binding.Validator.ValidateStruct(&badType))
}

func TestListingQuery_Filter(t *testing.T) {
	pool := int64(3)
	f := ListingQuery{PoolID: &pool, Offset: 20}.Filter()

	assert.Equal(t, 50, f.Limit)
	assert.Equal(t, 20, f.Offset)
	assert.Equal(t, &pool, f.PoolID)
	assert.Equal(t, 10, ListingQuery{Limit: 10}.Filter().Limit)
}
