package validate

import (
	"regexp"
	"strings"
)

var (
	// Indian mobile: 10 digits, first digit 6-9
	reMobile   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reOrderID  = regexp.MustCompile(`^ORD[0-9]{1,16}$`)
	reSlug     = regexp.MustCompile(`^[a-z0-9-]{1,40}$`)
	reFilename = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)
	reStatus   = regexp.MustCompile(`^(in-progress|completed|cancelled)$`)
)

func Mobile(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reMobile.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// Address only needs to be non-empty and bounded.
func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 300 {
		return "", false
	}
	return s, true
}

// OrderID validates the ORD<millis> shape.
func OrderID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reOrderID.MatchString(s)
}

// CategorySlug validates product category values (oils, powders, ...).
func CategorySlug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSlug.MatchString(s)
}

// CategoryName validates a display name for the category list.
func CategoryName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 || strings.ContainsAny(s, "\r\n") {
		return "", false
	}
	return s, true
}

// Status validates order status enums.
func Status(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reStatus.MatchString(s)
}

// Filename rejects anything that could escape the images directory.
func Filename(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !reFilename.MatchString(s) {
		return "", false
	}
	if strings.Contains(s, "..") {
		return "", false
	}
	return s, true
}

// Discount must be a percentage.
func Discount(v float64) bool { return v >= 0 && v <= 100 }

// Price cannot be negative.
func Price(v float64) bool { return v >= 0 }
