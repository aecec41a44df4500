package validate

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@x.com", true},
		{"user.name+tag@sub.domain.org", true},
		{"first_last%95@mail.co", true},
		{"plainaddress", false},
		{"@missing-local.com", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"user@domain.com extra", false},
		{"", false},
	}

	for _, c := range cases {
		if got := Email(c.in); got != c.want {
			t.Errorf("Email(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"987654321", false},
		{"98765432100", false},
		{"98765o4321", false},
		{"98765 4321", false},
		{"", false},
	}

	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Errorf("Phone(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAllPresent(t *testing.T) {
	if !AllPresent("a", "b", "c") {
		t.Fatal("expected all non-empty fields to pass")
	}
	if AllPresent("a", "", "c") {
		t.Fatal("expected empty field to fail")
	}
	if AllPresent("a", "   ", "c") {
		t.Fatal("expected whitespace-only field to fail")
	}
	if !AllPresent() {
		t.Fatal("expected no fields to pass vacuously")
	}
}
