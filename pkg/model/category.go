package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name or slug cannot be
// resolved.
var ErrUnknownCategory = errors.New("model: unknown category")

// Category enumerates the supported payload kinds.
type Category int

const (
	Number Category = iota + 1
	WiFiPassword
	Link
	WhatsApp
	Text
	Email
	Phone
	SMS
	Location
	Event
	SocialMedia
	VCard
	Cryptocurrency
	Barcode2D
)

// DefaultCategory is selected when a session starts.
const DefaultCategory = Text

type categoryInfo struct {
	name string
	slug string
}

var categoryTable = map[Category]categoryInfo{
	Number:         {name: "Number", slug: "number"},
	WiFiPassword:   {name: "WiFi Password", slug: "wifi"},
	Link:           {name: "Link", slug: "link"},
	WhatsApp:       {name: "WhatsApp", slug: "whatsapp"},
	Text:           {name: "Text", slug: "text"},
	Email:          {name: "Email", slug: "email"},
	Phone:          {name: "Phone", slug: "phone"},
	SMS:            {name: "SMS", slug: "sms"},
	Location:       {name: "Location", slug: "location"},
	Event:          {name: "Event", slug: "event"},
	SocialMedia:    {name: "Social Media", slug: "social"},
	VCard:          {name: "vCard", slug: "vcard"},
	Cryptocurrency: {name: "Cryptocurrency", slug: "crypto"},
	Barcode2D:      {name: "2D Barcode", slug: "barcode"},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryTable))
	for c := Number; c <= Barcode2D; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// String returns the display name.
func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Slug returns the stable machine identifier.
func (c Category) Slug() string {
	if info, ok := categoryTable[c]; ok {
		return info.slug
	}
	return ""
}

// ParseCategory resolves a display name or slug, ignoring case and
// surrounding whitespace.
func ParseCategory(raw string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownCategory)
	}
	for c, info := range categoryTable {
		if needle == info.slug || needle == strings.ToLower(info.name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

// MarshalText encodes the category as its slug.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.Slug()), nil
}

// UnmarshalText accepts a slug or display name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
