package directory

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workflow-hq/workflow-api/internal/constants"
)

func TestOrganizations(t *testing.T) {
	orgs := Organizations()
	require.Len(t, orgs, 5)
	require.Equal(t, "org_azure", orgs[0].Slug)
	require.Equal(t, "Azure Tech", orgs[0].Name)
	require.Equal(t, "org_techm", orgs[4].Slug)

	require.True(t, KnownOrganization("org_aws"))
	require.False(t, KnownOrganization("org_unknown"))
}

func TestSeedAdmins(t *testing.T) {
	admins := SeedAdmins()
	require.Len(t, admins, 11)

	perOrg := make(map[string]int)
	var global int
	for _, admin := range admins {
		if admin.OrganizationSlug == nil {
			global++
			continue
		}
		require.True(t, KnownOrganization(*admin.OrganizationSlug))
		perOrg[*admin.OrganizationSlug]++
	}

	require.Equal(t, 1, global)
	for _, org := range Organizations() {
		require.Equal(t, 2, perOrg[org.Slug], "expected two admins for %s", org.Slug)
	}
}

func TestGenerateCandidateEmployeeID(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id, err := GenerateCandidateEmployeeID()
		require.NoError(t, err)
		require.Len(t, id, 6)

		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, constants.EmployeeIDMin)
		require.LessOrEqual(t, n, constants.EmployeeIDMax)
	}
}
