package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestFieldMap_PreservesInsertionOrder(t *testing.T) {
	m := NewFieldMap("wifi_ssid", "Home", "wifi_password", "secret")
	m.Set("wifi_encryption", "WPA2")
	m.Set("wifi_ssid", "Office")

	if diff := cmp.Diff([]string{"wifi_ssid", "wifi_password", "wifi_encryption"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := m.Get("wifi_ssid"); got != "Office" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
	if got := m.Get("missing"); got != "" {
		t.Fatalf("expected empty value for missing key, got %q", got)
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestFieldMap_ZeroValueAndDelete(t *testing.T) {
	var m FieldMap
	if m.Len() != 0 || m.Get("x") != "" {
		t.Fatalf("zero value should be empty")
	}
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")
	m.Delete("b")
	m.Delete("nope")
	if diff := cmp.Diff([]string{"a", "c"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldMap_CloneIsIndependent(t *testing.T) {
	original := NewFieldMap("text", "hello")
	clone := original.Clone()
	clone.Set("text", "changed")
	clone.Set("extra", "x")

	if original.Get("text") != "hello" || original.Len() != 1 {
		t.Fatalf("clone mutated original: %v", original.Map())
	}
	if original.Equal(clone) {
		t.Fatalf("expected maps to differ")
	}
}

func TestFieldMap_JSONKeepsOrder(t *testing.T) {
	raw := []byte(`{"event_title":"Meet","event_start":"2025-01-01T14:00","event_end":""}`)
	var m FieldMap
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff([]string{"event_title", "event_start", "event_end"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != string(raw) {
		t.Fatalf("json mismatch\nwant: %s\n got: %s", raw, out)
	}

	if err := json.Unmarshal([]byte(`{"n":1}`), &m); err == nil {
		t.Fatalf("expected error for non-string value")
	}
}

func TestFieldMap_YAMLKeepsOrder(t *testing.T) {
	src := "vcard_name: Ada\nvcard_phone: \"+44 1\"\nvcard_email: ada@example.com\n"
	var m FieldMap
	if err := yaml.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff([]string{"vcard_name", "vcard_phone", "vcard_email"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if m.Get("vcard_phone") != "+44 1" {
		t.Fatalf("unexpected phone %q", m.Get("vcard_phone"))
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back FieldMap
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if !back.Equal(m) {
		t.Fatalf("yaml round trip mismatch: %v vs %v", back.Map(), m.Map())
	}
}

func TestFieldMapFrom_SortsKeys(t *testing.T) {
	m := FieldMapFrom(map[string]string{"b": "2", "a": "1"})
	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}
