package categories

import (
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
)

const (
	FieldSocialPlatform = "social_platform"
	FieldSocialUsername = "social_username"
	FieldVCardName      = "vcard_name"
	FieldVCardPhone     = "vcard_phone"
	FieldVCardEmail     = "vcard_email"
	FieldCryptoType     = "crypto_type"
	FieldCryptoAddress  = "crypto_address"
)

const (
	DefaultSocialPlatform = "twitter"
	DefaultCryptoType     = "bitcoin"
	unknownPlatformBase   = "https://"
)

// SocialPlatforms lists the platforms offered by the form, in display order.
var SocialPlatforms = []string{"twitter", "instagram", "facebook", "linkedin", "youtube", "tiktok", "snapchat", "pinterest"}

var socialBaseURLs = map[string]string{
	"twitter":   "https://twitter.com/",
	"instagram": "https://instagram.com/",
	"facebook":  "https://facebook.com/",
	"linkedin":  "https://linkedin.com/in/",
	"youtube":   "https://youtube.com/@",
	"tiktok":    "https://tiktok.com/@",
	"snapchat":  "https://snapchat.com/add/",
	"pinterest": "https://pinterest.com/",
}

// CryptoCurrencies lists the currencies offered by the form.
var CryptoCurrencies = []string{"bitcoin", "ethereum", "litecoin", "dogecoin"}

// SocialHandler builds a profile URL for the selected platform.
type SocialHandler struct{}

func (SocialHandler) Category() model.Category { return model.SocialMedia }

func (SocialHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: FieldSocialPlatform, Kind: model.FieldKindSelect, Options: SocialPlatforms, Default: DefaultSocialPlatform},
		{Key: FieldSocialUsername, Kind: model.FieldKindText},
	}
}

func (SocialHandler) Validate(model.FieldMap) error { return nil }

func (SocialHandler) Format(fields model.FieldMap) string {
	username := strings.TrimSpace(fields.Get(FieldSocialUsername))
	if username == "" {
		return ""
	}
	return SocialBaseURL(fields.Get(FieldSocialPlatform)) + username
}

// SocialBaseURL resolves the profile prefix for platform. A blank platform
// means twitter; an unrecognised one yields "https://".
func SocialBaseURL(platform string) string {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		platform = DefaultSocialPlatform
	}
	if base, ok := socialBaseURLs[platform]; ok {
		return base
	}
	return unknownPlatformBase
}

// VCardHandler builds a vCard 3.0 contact block.
type VCardHandler struct{}

func (VCardHandler) Category() model.Category { return model.VCard }

func (VCardHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: FieldVCardName, Kind: model.FieldKindText},
		{Key: FieldVCardPhone, Kind: model.FieldKindText},
		{Key: FieldVCardEmail, Kind: model.FieldKindText},
	}
}

func (VCardHandler) Validate(model.FieldMap) error { return nil }

func (VCardHandler) Format(fields model.FieldMap) string {
	name := strings.TrimSpace(fields.Get(FieldVCardName))
	if name == "" {
		return ""
	}
	lines := []string{"BEGIN:VCARD", "VERSION:3.0", "FN:" + name}
	if phone := strings.TrimSpace(fields.Get(FieldVCardPhone)); phone != "" {
		lines = append(lines, "TEL:"+phone)
	}
	if email := strings.TrimSpace(fields.Get(FieldVCardEmail)); email != "" {
		lines = append(lines, "EMAIL:"+email)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

// CryptoHandler builds a "<currency>:<address>" payment URI.
type CryptoHandler struct{}

func (CryptoHandler) Category() model.Category { return model.Cryptocurrency }

func (CryptoHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: FieldCryptoType, Kind: model.FieldKindSelect, Options: CryptoCurrencies, Default: DefaultCryptoType},
		{Key: FieldCryptoAddress, Kind: model.FieldKindText},
	}
}

func (CryptoHandler) Validate(model.FieldMap) error { return nil }

func (CryptoHandler) Format(fields model.FieldMap) string {
	address := strings.TrimSpace(fields.Get(FieldCryptoAddress))
	if address == "" {
		return ""
	}
	currency := strings.ToLower(strings.TrimSpace(fields.Get(FieldCryptoType)))
	if currency == "" {
		currency = DefaultCryptoType
	}
	return currency + ":" + address
}
