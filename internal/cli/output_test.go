package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/cart"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/shop"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(CartResult{Items: []catalog.Product{}, State: "empty"})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeEmptyCart, "cart is empty", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeEmptyCart, resp.Error.Code)
	assert.Equal(t, "cart is empty", resp.Error.Message)
}

func TestOutputFormatter_TextSuccessUsesStringer(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success(CartResult{
		Items: []catalog.Product{{ID: 2, Name: "Mouse", Price: 40}},
		Total: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, "0  Mouse - $40\nTotal: $40\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeCatalog, "catalog load failed", map[string]string{"location": "x"})
	require.NoError(t, err)
	assert.Equal(t, "Error [E003]: catalog load failed\n", buf.String())
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	err := formatter.Error(ErrCodeCatalog, "catalog load failed", map[string]string{"location": "x"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E003]")
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			diag := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:    "json",
				Writer:    out,
				ErrWriter: diag,
				Verbose:   tt.verbose,
			}

			formatter.VerboseLog("Loaded %d product(s)", 5)

			assert.Empty(t, out.String())
			if tt.wantLog {
				assert.Equal(t, "Loaded 5 product(s)\n", diag.String())
			} else {
				assert.Empty(t, diag.String())
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"config", fmt.Errorf("%w: bad", errConfig), ErrCodeConfig, ExitCommandError},
		{"storage", fmt.Errorf("%w: locked", errStorage), ErrCodeStorage, ExitCommandError},
		{"argument", fmt.Errorf("%w: abc", errArgument), ErrCodeArgument, ExitCommandError},
		{"unsupported", shop.ErrCheckoutUnsupported, ErrCodeUnsupported, ExitCommandError},
		{"load", &catalog.LoadError{Location: "x", Op: "fetch", Err: errors.New("boom")}, ErrCodeCatalog, ExitFailure},
		{"unknown_product", fmt.Errorf("%w: id 9", shop.ErrUnknownProduct), ErrCodeUnknownID, ExitFailure},
		{"range", &cart.RangeError{Index: 3, Len: 1}, ErrCodeOutOfRange, ExitFailure},
		{"empty", cart.ErrEmptyCheckout, ErrCodeEmptyCart, ExitFailure},
		{"other", errors.New("disk on fire"), ErrCodeGeneric, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.Equal(t, tt.wantCode, got.code)
			assert.Equal(t, tt.wantExit, got.exit)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitFailure, "empty cart", cart.ErrEmptyCheckout))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.ErrorIs(t, wrapped, cart.ErrEmptyCheckout)
}

func TestCLIResponse_JSONShape(t *testing.T) {
	resp := CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: ErrCodeOutOfRange, Message: "remove index 3: cart has 1 items"},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","error":{"code":"E005","message":"remove index 3: cart has 1 items"}}`, string(data))
}
