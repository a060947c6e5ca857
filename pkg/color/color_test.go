package color

import "testing"

func TestColorize(t *testing.T) {
	defer EnableColor(IsColorEnabled())

	EnableColor(true)
	if got := RedText("x"); got != Red+"x"+Reset {
		t.Errorf("enabled: expected escape sequences, got %q", got)
	}

	EnableColor(false)
	if got := RedText("x"); got != "x" {
		t.Errorf("disabled: expected plain text, got %q", got)
	}
}

func TestStrip(t *testing.T) {
	defer EnableColor(IsColorEnabled())
	EnableColor(true)

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{RedText("Undefined variable") + " `" + BlueText("x") + "`", "Undefined variable `x`"},
		{BrightRedText(BoldText("Error")), "Error"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
