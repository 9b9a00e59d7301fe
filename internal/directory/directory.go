// Package directory is the static identity catalog: the fixed set of
// organizations, the seed admin accounts, and the employee identifier
// generator.
package directory

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/workflow-hq/workflow-api/internal/constants"
	"github.com/workflow-hq/workflow-api/internal/models"
)

// Organizations returns the fixed organization catalog, in display order.
func Organizations() []models.Organization {
	return []models.Organization{
		{Slug: "org_azure", Name: "Azure Tech"},
		{Slug: "org_aws", Name: "AWS"},
		{Slug: "org_accenture", Name: "Accenture"},
		{Slug: "org_innovate", Name: "Innovate Solutions"},
		{Slug: "org_techm", Name: "Tech Mahindra"},
	}
}

// KnownOrganization reports whether slug is in the catalog.
func KnownOrganization(slug string) bool {
	for _, org := range Organizations() {
		if org.Slug == slug {
			return true
		}
	}
	return false
}

// SeedAdmin is a seed credential. Passwords here are fixture values that get
// bcrypt-hashed before they reach the database.
type SeedAdmin struct {
	Username         string
	Password         string
	OrganizationSlug *string
}

// SeedAdmins returns the seed admin accounts: two per organization plus a
// global fallback admin with no organization context.
func SeedAdmins() []SeedAdmin {
	slug := func(s string) *string { return &s }
	return []SeedAdmin{
		{Username: "azureadmin1", Password: "azurepass1", OrganizationSlug: slug("org_azure")},
		{Username: "azureadmin2", Password: "azurepass2", OrganizationSlug: slug("org_azure")},
		{Username: "awsadmin1", Password: "awspass1", OrganizationSlug: slug("org_aws")},
		{Username: "awsadmin2", Password: "awspass2", OrganizationSlug: slug("org_aws")},
		{Username: "accentureadmin1", Password: "accenturepass1", OrganizationSlug: slug("org_accenture")},
		{Username: "accentureadmin2", Password: "accenturepass2", OrganizationSlug: slug("org_accenture")},
		{Username: "innovateadmin1", Password: "innovatepass1", OrganizationSlug: slug("org_innovate")},
		{Username: "innovateadmin2", Password: "innovatepass2", OrganizationSlug: slug("org_innovate")},
		{Username: "techmadmin1", Password: "techmpass1", OrganizationSlug: slug("org_techm")},
		{Username: "techmadmin2", Password: "techmpass2", OrganizationSlug: slug("org_techm")},
		{Username: "admin", Password: "admin", OrganizationSlug: nil},
	}
}

// GenerateCandidateEmployeeID draws a 6-digit numeric string uniformly from
// [100000, 999999]. Uniqueness against the employee collection is the
// caller's responsibility.
func GenerateCandidateEmployeeID() (string, error) {
	span := big.NewInt(constants.EmployeeIDMax - constants.EmployeeIDMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate employee id candidate: %w", err)
	}
	return strconv.FormatInt(n.Int64()+constants.EmployeeIDMin, 10), nil
}
