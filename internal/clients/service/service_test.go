package service

import (
	"testing"

	"lexportal_backend/internal/clients/repository"
	"lexportal_backend/platform/apperr"
)

func strPtr(s string) *string { return &s }

func TestValidateByType(t *testing.T) {
	tests := []struct {
		name       string
		clientType string
		firstName  *string
		lastName   *string
		orgName    *string
		wantErr    bool
	}{
		{"individual complete", repository.TypeIndividual, strPtr("Ada"), strPtr("Okafor"), nil, false},
		{"individual missing last name", repository.TypeIndividual, strPtr("Ada"), nil, nil, true},
		{"individual blank first name", repository.TypeIndividual, strPtr("   "), strPtr("Okafor"), nil, true},
		{"organization complete", repository.TypeOrganization, nil, nil, strPtr("Acme LLP"), false},
		{"organization missing name", repository.TypeOrganization, nil, nil, nil, true},
		{"organization ignores person fields", repository.TypeOrganization, strPtr("Ada"), strPtr("Okafor"), strPtr("Acme LLP"), false},
		{"unknown type", "partnership", nil, nil, strPtr("Acme LLP"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateByType(tt.clientType, tt.firstName, tt.lastName, tt.orgName)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if apperr.GetKind(err) != apperr.KindValidation {
					t.Fatalf("expected KindValidation, got %v", apperr.GetKind(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	ind := repository.Client{
		ClientType: repository.TypeIndividual,
		FirstName:  strPtr("Ada"),
		LastName:   strPtr("Okafor"),
	}
	if got := displayName(ind); got != "Ada Okafor" {
		t.Fatalf("displayName(individual) = %q, want %q", got, "Ada Okafor")
	}

	org := repository.Client{
		ClientType:       repository.TypeOrganization,
		OrganizationName: strPtr("Acme LLP"),
		FirstName:        strPtr("ignored"),
	}
	if got := displayName(org); got != "Acme LLP" {
		t.Fatalf("displayName(organization) = %q, want %q", got, "Acme LLP")
	}

	partial := repository.Client{
		ClientType: repository.TypeIndividual,
		FirstName:  strPtr("Ada"),
	}
	if got := displayName(partial); got != "Ada" {
		t.Fatalf("displayName(partial individual) = %q, want %q", got, "Ada")
	}
}

func TestParseDatePtr(t *testing.T) {
	got, err := parseDatePtr(strPtr("1990-04-12"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Year() != 1990 || got.Month() != 4 || got.Day() != 12 {
		t.Fatalf("parseDatePtr returned %v", got)
	}

	if _, err := parseDatePtr(strPtr("12/04/1990")); err == nil {
		t.Fatal("expected error for non ISO date")
	}

	got, err = parseDatePtr(nil)
	if err != nil || got != nil {
		t.Fatalf("parseDatePtr(nil) = %v, %v", got, err)
	}
}
