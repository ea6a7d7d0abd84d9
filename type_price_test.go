package inventory

import "testing"

func TestPriceText(t *testing.T) {
	tests := []struct {
		in   Price
		want string
	}{
		{P(999.99), "999.99"},
		{P(1.2), "1.20"},
		{P(5), "5.00"},
		{P(0), "0.00"},
	}
	for _, tt := range tests {
		if got := tt.in.Text(); got != tt.want {
			t.Errorf("Text() = %q, want %q", got, tt.want)
		}
	}
}

func TestPriceString(t *testing.T) {
	if got, want := P(999.99).String(), "$999.99"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("999.99")
	if err != nil {
		t.Fatalf("ParsePrice() returned an unexpected error: %v", err)
	}
	if !p.Equal(P(999.99)) {
		t.Errorf("ParsePrice(\"999.99\") = %s, want 999.99", p.Text())
	}

	if _, err := ParsePrice("not-a-price"); err == nil {
		t.Error("ParsePrice(\"not-a-price\") did not fail")
	}
}

func TestParsePriceRoundTrip(t *testing.T) {
	p := P(12.3)
	back, err := ParsePrice(p.Text())
	if err != nil {
		t.Fatalf("ParsePrice(Text()) returned an unexpected error: %v", err)
	}
	if !back.Equal(p) {
		t.Errorf("round trip = %s, want %s", back.Text(), p.Text())
	}
}
