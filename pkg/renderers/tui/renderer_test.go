package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/widgets"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	passwords    []string
	infoMessages []string
	prompts      []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
	passPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func formFor(t *testing.T, category model.Category) model.Form {
	t.Helper()
	form, err := categories.Default().Form(category, widgets.NewRegistry())
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	return form
}

func TestRenderer_CollectsWiFiFields(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"HomeNet"},
		passwords: []string{"secret"},
		selectIdx: []int{2},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), formFor(t, model.WiFiPassword), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `{"wifi_ssid":"HomeNet","wifi_password":"secret","wifi_encryption":"WEP"}`
	if string(out) != want {
		t.Fatalf("unexpected output\nwant %s\ngot  %s", want, out)
	}
	if renderer.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_RepromptsOnlyTheFailingField(t *testing.T) {
	driver := &stubDriver{inputs: []string{"example.com", "https://example.com"}}
	renderer, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), formFor(t, model.Link), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "link=https%3A%2F%2Fexample.com" {
		t.Fatalf("unexpected output %q", out)
	}
	if diff := cmp.Diff([]string{"URL should start with http:// or https://"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 2 {
		t.Fatalf("expected two prompts, got %d", driver.inputPos)
	}
}

func TestRenderer_EmailRepromptKeepsOtherAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"not-an-email", "Hello", "user@example.com"},
		textAreas: []string{"Body"},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	values, err := renderer.Collect(context.Background(), formFor(t, model.Email), render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := model.NewFieldMap(
		categories.FieldEmail, "user@example.com",
		categories.FieldEmailSubject, "Hello",
		categories.FieldEmailBody, "Body",
	)
	if !values.Equal(want) {
		t.Fatalf("unexpected values %v", values.Map())
	}
}

func TestRenderer_GivesUpAfterMaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", "", ""}}
	renderer, err := New(WithPromptDriver(driver), WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, err = renderer.Render(context.Background(), formFor(t, model.Link), render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if !strings.Contains(err.Error(), "URL is required!") {
		t.Fatalf("expected last message in error, got %v", err)
	}
}

func TestRenderer_SeedsValuesAndShowsErrors(t *testing.T) {
	driver := &stubDriver{inputs: []string{"+15551234567"}}
	renderer, err := New(WithPromptDriver(driver), WithValidator(nil), WithTheme(Theme{ErrorPrefix: "! "}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	values, err := renderer.Collect(context.Background(), formFor(t, model.Phone), render.RenderOptions{
		Values:     model.NewFieldMap(categories.FieldPhone, "555"),
		Errors:     map[string][]string{categories.FieldPhone: {"Invalid phone number format"}},
		FormErrors: []string{"Please fix the errors below"},
	})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if values.Get(categories.FieldPhone) != "+15551234567" {
		t.Fatalf("unexpected value %q", values.Get(categories.FieldPhone))
	}
	want := []string{"! Please fix the errors below", "! Invalid phone number format"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_PrettyOutputMasksSecrets(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"HomeNet"},
		passwords: []string{"secret"},
		selectIdx: []int{0},
	}
	renderer, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	form := formFor(t, model.WiFiPassword)
	out, err := renderer.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "secret") {
		t.Fatalf("secret leaked into pretty output: %s", out)
	}
	if !strings.Contains(string(out), "********") {
		t.Fatalf("expected masked secret: %s", out)
	}
}

func TestRenderer_SubmitTransformer(t *testing.T) {
	driver := &stubDriver{inputs: []string{"42"}}
	renderer, err := New(
		WithPromptDriver(driver),
		WithSubmitTransformer(func(values model.FieldMap) (model.FieldMap, error) {
			values.Set(categories.FieldNumber, values.Get(categories.FieldNumber)+"0")
			return values, nil
		}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := renderer.Render(context.Background(), formFor(t, model.Number), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"number":"420"}` {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestRenderer_PromptCategory(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got, err := renderer.PromptCategory(context.Background(), model.Categories(), model.Number)
	if err != nil {
		t.Fatalf("prompt category: %v", err)
	}
	if got != model.Link {
		t.Fatalf("expected Link, got %v", got)
	}

	driver.selectIdx = append(driver.selectIdx, 99)
	if _, err := renderer.PromptCategory(context.Background(), model.Categories(), model.Number); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestRenderer_DriverErrorsPropagate(t *testing.T) {
	renderer, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := renderer.Render(context.Background(), formFor(t, model.Link), render.RenderOptions{}); err == nil {
		t.Fatalf("expected driver error")
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected error")
	}
}
