package categories

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
)

const (
	FieldWhatsApp     = "whatsapp_number"
	FieldEmail        = "email"
	FieldEmailSubject = "email_subject"
	FieldEmailBody    = "email_body"
	FieldPhone        = "phone_number"
	FieldSMSNumber    = "sms_number"
	FieldSMSMessage   = "sms_message"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]+$`)
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	dialStripper = strings.NewReplacer(" ", "", "-", "")
)

// WhatsAppHandler builds a wa.me chat link.
type WhatsAppHandler struct{}

func (WhatsAppHandler) Category() model.Category { return model.WhatsApp }

func (WhatsAppHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{{Key: FieldWhatsApp, Kind: model.FieldKindText, Required: true}}
}

func (WhatsAppHandler) Validate(fields model.FieldMap) error {
	phone := fields.Get(FieldWhatsApp)
	if phone == "" {
		return missing(model.WhatsApp, FieldWhatsApp, "Phone number is required!")
	}
	if !phonePattern.MatchString(phone) {
		return malformed(model.WhatsApp, FieldWhatsApp, "Invalid phone number format")
	}
	return nil
}

func (WhatsAppHandler) Format(fields model.FieldMap) string {
	return dialPrefixed("https://wa.me/", fields.Get(FieldWhatsApp))
}

// EmailHandler builds a mailto URI. Subject and body are appended verbatim.
type EmailHandler struct{}

func (EmailHandler) Category() model.Category { return model.Email }

func (EmailHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: FieldEmail, Kind: model.FieldKindText, Required: true},
		{Key: FieldEmailSubject, Kind: model.FieldKindText},
		{Key: FieldEmailBody, Kind: model.FieldKindTextArea},
	}
}

func (EmailHandler) Validate(fields model.FieldMap) error {
	address := fields.Get(FieldEmail)
	if address == "" {
		return missing(model.Email, FieldEmail, "Email address is required!")
	}
	if !emailPattern.MatchString(address) {
		return malformed(model.Email, FieldEmail, "Invalid email format")
	}
	return nil
}

func (EmailHandler) Format(fields model.FieldMap) string {
	address := strings.TrimSpace(fields.Get(FieldEmail))
	if address == "" {
		return ""
	}
	subject := strings.TrimSpace(fields.Get(FieldEmailSubject))
	body := strings.TrimSpace(fields.Get(FieldEmailBody))
	if subject == "" && body == "" {
		return "mailto:" + address
	}
	return "mailto:" + address + "?subject=" + subject + "&body=" + body
}

// PhoneHandler builds a tel URI.
type PhoneHandler struct{}

func (PhoneHandler) Category() model.Category { return model.Phone }

func (PhoneHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{{Key: FieldPhone, Kind: model.FieldKindText}}
}

func (PhoneHandler) Validate(model.FieldMap) error { return nil }

func (PhoneHandler) Format(fields model.FieldMap) string {
	return dialPrefixed("tel:", fields.Get(FieldPhone))
}

// SMSHandler builds an sms URI with an optional body.
type SMSHandler struct{}

func (SMSHandler) Category() model.Category { return model.SMS }

func (SMSHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: FieldSMSNumber, Kind: model.FieldKindText},
		{Key: FieldSMSMessage, Kind: model.FieldKindTextArea},
	}
}

func (SMSHandler) Validate(model.FieldMap) error { return nil }

func (SMSHandler) Format(fields model.FieldMap) string {
	uri := dialPrefixed("sms:", fields.Get(FieldSMSNumber))
	if uri == "" {
		return ""
	}
	if message := strings.TrimSpace(fields.Get(FieldSMSMessage)); message != "" {
		uri += "?body=" + message
	}
	return uri
}

// dialPrefixed trims a phone number and strips its spaces and hyphens.
func dialPrefixed(prefix, number string) string {
	number = dialStripper.Replace(strings.TrimSpace(number))
	if number == "" {
		return ""
	}
	return prefix + number
}
