package personalization

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Input is the customer-supplied customization applied to a book template.
// ChildName must pass Validate before any downstream use.
type Input struct {
	ChildName  string `json:"childName" validate:"required"`
	CoverColor string `json:"coverColor" validate:"required"`
	Dedication string `json:"dedication,omitempty"`
	Locale     string `json:"locale"`
	ThemeID    string `json:"themeId" validate:"required"`
}

// Fingerprint returns a stable digest of the personalization snapshot. It is
// the identity component of the cart dedup key and the cache key for preview
// and print-asset lookups.
func (i Input) Fingerprint() string {
	h := sha256.New()
	for _, part := range []string{i.ThemeID, i.ChildName, i.CoverColor, i.Dedication, i.Locale} {
		h.Write([]byte(strings.TrimSpace(part)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
