package categories

import (
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
)

const (
	FieldWiFiSSID       = "wifi_ssid"
	FieldWiFiPassword   = "wifi_password"
	FieldWiFiEncryption = "wifi_encryption"
)

// WiFiEncryptions lists the selectable security types.
var WiFiEncryptions = []string{"WPA", "WPA2", "WEP", "None"}

// DefaultWiFiEncryption is used when the encryption field is absent.
const DefaultWiFiEncryption = "WPA"

// WiFiHandler builds the "WIFI:" network join payload.
type WiFiHandler struct{}

func (WiFiHandler) Category() model.Category { return model.WiFiPassword }

func (WiFiHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: FieldWiFiSSID, Kind: model.FieldKindText, Required: true},
		{Key: FieldWiFiPassword, Kind: model.FieldKindSecret, Required: true},
		{Key: FieldWiFiEncryption, Kind: model.FieldKindSelect, Options: WiFiEncryptions, Default: "WPA2"},
	}
}

func (WiFiHandler) Validate(fields model.FieldMap) error {
	if fields.Get(FieldWiFiSSID) == "" {
		return missing(model.WiFiPassword, FieldWiFiSSID, "WiFi SSID is required!")
	}
	if fields.Get(FieldWiFiPassword) == "" {
		return missing(model.WiFiPassword, FieldWiFiPassword, "WiFi Password is required!")
	}
	return nil
}

func (WiFiHandler) Format(fields model.FieldMap) string {
	ssid := strings.TrimSpace(fields.Get(FieldWiFiSSID))
	password := strings.TrimSpace(fields.Get(FieldWiFiPassword))
	if ssid == "" || password == "" {
		return ""
	}
	encryption := fields.Get(FieldWiFiEncryption)
	if strings.TrimSpace(encryption) == "" {
		encryption = DefaultWiFiEncryption
	}
	return "WIFI:S:" + ssid + ";T:" + encryption + ";P:" + password + ";;"
}
