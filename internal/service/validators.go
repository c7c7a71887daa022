package service

import (
	"fmt"
	"time"
)

const birthDateLayout = "02/01/2006"

// ValidateTaxID checks the natural-person tax id format: exactly 11 digits.
func ValidateTaxID(taxID string) error {
	if len(taxID) != 11 {
		return fmt.Errorf("invalid tax id length: must be 11 digits")
	}
	for _, r := range taxID {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid tax id: must contain only digits")
		}
	}
	return nil
}

// ValidateBirthDate checks that the birth date parses as DD/MM/YYYY and is
// not in the future.
func ValidateBirthDate(birthDate string, now time.Time) error {
	d, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return fmt.Errorf("invalid birth date: expected DD/MM/YYYY")
	}
	if d.After(now) {
		return fmt.Errorf("invalid birth date: %s is in the future", birthDate)
	}
	return nil
}
