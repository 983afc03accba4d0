package policysection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"policywizard/internal/domain/catalogs/organization"
)

func ids(sections []*PolicySection) []ID {
	out := make([]ID, len(sections))
	for i, s := range sections {
		out[i] = s.ID
	}
	return out
}

func testCatalog() []*PolicySection {
	return []*PolicySection{
		{ID: 1, BudgetAccounting: true, BusinessAccounting: true},
		{ID: 2, BudgetAccounting: true},
		{ID: 3, BusinessAccounting: true},
		{ID: 4, BudgetAccounting: true, IndustrySpecific: true, Industries: []string{"healthcare"}},
		{ID: 5, BusinessAccounting: true, IndustrySpecific: true, Industries: []string{"construction", "healthcare"}},
		{ID: 6},
		{ID: 7, BudgetAccounting: true, IndustrySpecific: true},
	}
}

func org(accountingType organization.AccountingType, industry string) *organization.Organization {
	return organization.NewOrganization("org", "inn", "kpp", accountingType, industry, "office")
}

func TestApplicableSections(t *testing.T) {
	tests := []struct {
		name string
		org  *organization.Organization
		want []ID
	}{
		{"budget without industry", org(organization.AccountingBudget, ""), []ID{1, 2}},
		{"budget healthcare", org(organization.AccountingBudget, "healthcare"), []ID{1, 2, 4}},
		{"business without industry", org(organization.AccountingBusiness, ""), []ID{1, 3}},
		{"business construction", org(organization.AccountingBusiness, "construction"), []ID{1, 3, 5}},
		{"business unknown industry", org(organization.AccountingBusiness, "mining"), []ID{1, 3}},
		{"unknown accounting type", org("tax", "healthcare"), []ID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplicableSections(tt.org, testCatalog())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplicableSections_AccountingFlagProperty(t *testing.T) {
	for _, accountingType := range []organization.AccountingType{organization.AccountingBudget, organization.AccountingBusiness} {
		for _, industry := range []string{"", "healthcare", "construction"} {
			for _, s := range ApplicableSections(org(accountingType, industry), testCatalog()) {
				if accountingType == organization.AccountingBudget {
					assert.True(t, s.BudgetAccounting, "section %d", s.ID)
				} else {
					assert.True(t, s.BusinessAccounting, "section %d", s.ID)
				}
			}
		}
	}
}

func TestApplicableSections_IndustryProperty(t *testing.T) {
	catalog := testCatalog()
	for _, industry := range []string{"", "healthcare", "construction", "education"} {
		o := org(organization.AccountingBusiness, industry)
		applicable := make(map[ID]bool)
		for _, s := range ApplicableSections(o, catalog) {
			applicable[s.ID] = true
		}

		for _, s := range catalog {
			if !s.IndustrySpecific || !s.BusinessAccounting {
				continue
			}
			want := industry != "" && s.HasIndustry(industry)
			assert.Equal(t, want, applicable[s.ID], "industry %q section %d", industry, s.ID)
		}
	}
}

func TestApplicableSections_Scenario(t *testing.T) {
	catalog := []*PolicySection{
		{ID: 1, Title: "A", BudgetAccounting: true},
		{ID: 2, Title: "B", BudgetAccounting: true, IndustrySpecific: true, Industries: []string{"health"}},
	}

	got := ApplicableSections(org(organization.AccountingBudget, ""), catalog)

	assert.Equal(t, []ID{1}, ids(got))
}

func TestFilter_IndependentCriteria(t *testing.T) {
	budget := organization.AccountingBudget
	healthcare := "healthcare"

	tests := []struct {
		name     string
		criteria Criteria
		want     []ID
	}{
		{"no criteria", Criteria{}, []ID{1, 2, 3, 4, 5, 6, 7}},
		{"accounting only keeps all industry sections", Criteria{AccountingType: &budget}, []ID{1, 2, 4, 7}},
		{"industry only", Criteria{Industry: &healthcare}, []ID{1, 2, 3, 4, 5, 6}},
		{"both", Criteria{AccountingType: &budget, Industry: &healthcare}, []ID{1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(testCatalog(), tt.criteria)))
		})
	}
}

func TestMatchesIndustry_EmptyIndustriesList(t *testing.T) {
	s := &PolicySection{IndustrySpecific: true}

	assert.False(t, s.MatchesIndustry(""))
	assert.False(t, s.MatchesIndustry("healthcare"))
}
