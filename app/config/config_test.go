package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPrinterEnv(t *testing.T) {
	t.Setenv("PRINTER_VENDOR_ID", "0x0416")
	t.Setenv("PRINTER_PRODUCT_ID", "0x5011")
}

func TestLoad(t *testing.T) {
	setPrinterEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, HexID(0x0416), cfg.Printer.VendorID)
	assert.Equal(t, HexID(0x5011), cfg.Printer.ProductID)
	assert.Equal(t, 0, cfg.Printer.Interface)
	assert.Empty(t, cfg.Printer.Profile)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadOptionalOverrides(t *testing.T) {
	setPrinterEnv(t)
	t.Setenv("PRINTER_INTERFACE", "1")
	t.Setenv("PRINTER_PROFILE", "TM-T88III")
	t.Setenv("ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Printer.Interface)
	assert.Equal(t, "TM-T88III", cfg.Printer.Profile)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoadMissingVendorID(t *testing.T) {
	// t.Setenv registers cleanup to restore the original value; the
	// Unsetenv after it leaves the variable genuinely unset for Load.
	t.Setenv("PRINTER_VENDOR_ID", "")
	os.Unsetenv("PRINTER_VENDOR_ID")
	t.Setenv("PRINTER_PRODUCT_ID", "0x5011")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidHex(t *testing.T) {
	t.Setenv("PRINTER_VENDOR_ID", "not-hex")
	t.Setenv("PRINTER_PRODUCT_ID", "0x5011")

	_, err := Load()
	assert.Error(t, err)
}

func TestHexIDUnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    HexID
		wantErr bool
	}{
		{name: "with 0x prefix", in: "0x0416", want: 0x0416},
		{name: "without prefix", in: "0416", want: 0x0416},
		{name: "uppercase", in: "0X5011", want: 0x5011},
		{name: "surrounding whitespace", in: " 0x0416 ", want: 0x0416},
		{name: "not hex", in: "zz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "too large", in: "0x10000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h HexID
			err := h.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestHexIDString(t *testing.T) {
	assert.Equal(t, "0x0416", HexID(0x0416).String())
}
