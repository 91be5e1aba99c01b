package validate_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"royalstudy/internal/validate"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"layla@royalstudy.test", true},
		{"  spaced@example.com  ", true},
		{"no-at-sign", false},
		{"@missing.local", false},
		{"", false},
		{strings.Repeat("a", 45) + "@toolong.example", false},
	}
	for _, c := range cases {
		if _, ok := validate.Email(c.in); ok != c.ok {
			t.Errorf("Email(%q) = %v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"+962790000000", true},
		{"0790000000", true},
		{"07 9000 0000", true}, // spaces stripped
		{"12345", false},       // too short
		{"phone", false},
		{"+1234567890123456", false}, // too long
	}
	for _, c := range cases {
		if _, ok := validate.Phone(c.in); ok != c.ok {
			t.Errorf("Phone(%q) = %v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestQAllowsArabicRejectsMarkup(t *testing.T) {
	if q, ok := validate.Q("  رياضيات  "); !ok || q != "رياضيات" {
		t.Fatalf("Arabic search rejected: %q %v", q, ok)
	}
	if _, ok := validate.Q("<script>alert(1)</script>"); ok {
		t.Fatal("markup accepted")
	}
	if _, ok := validate.Q("   "); ok {
		t.Fatal("blank accepted")
	}
	long, ok := validate.Q(strings.Repeat("x", 150))
	if !ok || len(long) != 100 {
		t.Fatalf("long query not capped: len=%d ok=%v", len(long), ok)
	}
	// The cap must land on a rune boundary: a long Arabic term stays
	// valid UTF-8 instead of ending in half a character.
	longAr, ok := validate.Q(strings.Repeat("س", 150))
	if !ok || !utf8.ValidString(longAr) {
		t.Fatalf("Arabic cap corrupted the term: ok=%v", ok)
	}
	if utf8.RuneCountInString(longAr) != 100 {
		t.Fatalf("Arabic cap = %d runes, want 100", utf8.RuneCountInString(longAr))
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("b-math12"); !ok {
		t.Fatal("valid id rejected")
	}
	for _, bad := range []string{"", "has space", "semi;colon", strings.Repeat("a", 65)} {
		if _, ok := validate.ID(bad); ok {
			t.Errorf("ID(%q) accepted", bad)
		}
	}
}

func TestPassword(t *testing.T) {
	if validate.Password("short7!") {
		t.Fatal("7 chars accepted")
	}
	if !validate.Password("Passw0rd!") {
		t.Fatal("valid password rejected")
	}
	if validate.Password(strings.Repeat("x", 73)) {
		t.Fatal("over bcrypt limit accepted")
	}
}

func TestPageClampsToOne(t *testing.T) {
	for _, in := range []string{"", "0", "-3", "abc"} {
		if p := validate.Page(in); p != 1 {
			t.Errorf("Page(%q) = %d, want 1", in, p)
		}
	}
	if p := validate.Page("7"); p != 7 {
		t.Fatalf("Page(7) = %d", p)
	}
}

func TestScheduleTypeAndDate(t *testing.T) {
	for _, good := range []string{"exams", "calendar", "projects", "review"} {
		if _, ok := validate.ScheduleType(good); !ok {
			t.Errorf("ScheduleType(%q) rejected", good)
		}
	}
	if _, ok := validate.ScheduleType("party"); ok {
		t.Fatal("unknown type accepted")
	}
	if _, ok := validate.Date("2026-10-05"); !ok {
		t.Fatal("valid date rejected")
	}
	if _, ok := validate.Date("05/10/2026"); ok {
		t.Fatal("slash date accepted")
	}
}

func TestPriceAndQty(t *testing.T) {
	if v, ok := validate.Price("12.50"); !ok || v != 12.5 {
		t.Fatalf("Price(12.50) = %v %v", v, ok)
	}
	if _, ok := validate.Price("-1"); ok {
		t.Fatal("negative price accepted")
	}
	if n, ok := validate.Qty("0"); !ok || n != 0 {
		t.Fatalf("Qty(0) = %v %v", n, ok)
	}
	if _, ok := validate.Qty("-2"); ok {
		t.Fatal("negative qty accepted")
	}
}
