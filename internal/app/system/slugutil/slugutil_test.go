package slugutil_test

import (
	"strings"
	"testing"

	"github.com/oniumlabs/oniumadmin/internal/app/system/slugutil"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Steel Bottle 1L", "steel-bottle-1l"},
		{"  Wireless   Mouse  ", "wireless-mouse"},
		{"USB-C Cable (2m)", "usb-c-cable-2m"},
		{"Déjà Vu Lamp", "déjà-vu-lamp"},
		{"!!!", "item"},
		{"", "item"},
	}

	for _, tc := range tests {
		if got := slugutil.Make(tc.in); got != tc.want {
			t.Errorf("Make(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeUnique_PrefixAndSuffix(t *testing.T) {
	got := slugutil.MakeUnique("Steel Bottle")
	if !strings.HasPrefix(got, "steel-bottle-") {
		t.Errorf("MakeUnique: got %q, want steel-bottle- prefix", got)
	}
	suffix := strings.TrimPrefix(got, "steel-bottle-")
	if suffix == "" {
		t.Error("MakeUnique: expected a timestamp suffix")
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			t.Errorf("MakeUnique suffix not numeric: %q", suffix)
			break
		}
	}
}

func TestMakeUnique_SameTitleDiffers(t *testing.T) {
	a := slugutil.MakeUnique("Steel Bottle")
	b := slugutil.MakeUnique("Steel Bottle")
	if a == b {
		t.Errorf("MakeUnique produced identical slugs: %q", a)
	}
}
