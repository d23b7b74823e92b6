package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		debug      bool
		wantStatus int
		wantCode   string
		wantDetail bool
	}{
		{"custom", ErrUnknownUnit, false, http.StatusBadRequest, ErrCodeUnknownUnit, false},
		{"wrapped custom", fmt.Errorf("lookup: %w", ErrInvalidServings.WithErr(errors.New("zero"))), true, http.StatusBadRequest, ErrCodeInvalidServings, true},
		{"validation", NewValidationError("bad input"), false, http.StatusBadRequest, ErrCodeInvalidRequest, false},
		{"plain", errors.New("boom"), false, http.StatusInternalServerError, ErrCodeInternalError, false},
		{"plain debug", errors.New("boom"), true, http.StatusInternalServerError, ErrCodeInternalError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := ToErrorResponse(tt.err, tt.debug)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Code, tt.wantCode)
			}
			if (resp.Details != "") != tt.wantDetail {
				t.Errorf("details = %q, want present=%v", resp.Details, tt.wantDetail)
			}
		})
	}
}

func TestCustomErrorIs(t *testing.T) {
	err := fmt.Errorf("scale: %w", ErrInvalidMultiplier.WithErr(errors.New("NaN")))
	if !errors.Is(err, ErrInvalidMultiplier) {
		t.Error("expected errors.Is to match by code")
	}
	if errors.Is(err, ErrUnknownUnit) {
		t.Error("unexpected match with a different code")
	}
	if !IsValidationError(fmt.Errorf("wrap: %w", NewValidationError("x"))) {
		t.Error("expected wrapped validation error to be detected")
	}
}

func TestDecodeJSONStrict(t *testing.T) {
	var ing Ingredient
	if err := DecodeJSONStrict(strings.NewReader(`{"name":"flour","amount":"2","unit":"cup"}`), &ing); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ing.Name != "flour" || ing.Amount != "2" || ing.Unit != "cup" {
		t.Errorf("unexpected ingredient %+v", ing)
	}
	if err := DecodeJSONStrict(strings.NewReader(`{"name":"flour","grams":2}`), &ing); err == nil {
		t.Error("expected unknown field error")
	}
	if err := ParseJSON(`{"name":"salt"} {"name":"pepper"}`, &ing); err == nil {
		t.Error("expected extra data error")
	}
}

func TestFormatIngredients(t *testing.T) {
	got := FormatIngredients([]Ingredient{
		{Name: "flour", Amount: "2", Unit: "cup"},
		{Name: "salt"},
	})
	want := "- flour: 2 cup\n- salt\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRedactFields(t *testing.T) {
	fields := redactFields([]zap.Field{
		zap.String("redis_password", "hunter2"),
		zap.String("unit", "g"),
	})
	if fields[0].String != "****" {
		t.Errorf("password not redacted: %q", fields[0].String)
	}
	if fields[1].String != "g" {
		t.Errorf("unexpected change to %q", fields[1].String)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("DEBUG") != zapcore.DebugLevel {
		t.Error("expected debug level")
	}
	if ParseLevel("nonsense") != zapcore.InfoLevel {
		t.Error("expected info level fallback")
	}
}
