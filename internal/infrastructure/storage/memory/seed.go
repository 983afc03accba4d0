package memory

import (
	"policywizard/internal/domain/catalogs/policysection"
)

// Industry names used by industry-specific catalog sections.
const (
	IndustryHealthcare   = "healthcare"
	IndustryEducation    = "education"
	IndustryCulture      = "culture"
	IndustryConstruction = "construction"
	IndustryAgriculture  = "agriculture"
)

// DefaultCatalog returns the accounting policy sections seeded on every start.
// Ids are assigned by the store in this order.
func DefaultCatalog() []policysection.PolicySection {
	return []policysection.PolicySection{
		{
			SectionNumber:      "1.1",
			Title:              "General provisions",
			Content:            "The accounting policy is adopted under Federal Law No. 402-FZ \"On Accounting\" and applies from the date of approval until amended.",
			BudgetAccounting:   true,
			BusinessAccounting: true,
		},
		{
			SectionNumber:      "1.2",
			Title:              "Organization of accounting",
			Content:            "Accounting is maintained by the centralized accounting office under an outsourcing agreement. The chief accountant of the office is responsible for the accounting records.",
			BudgetAccounting:   true,
			BusinessAccounting: true,
		},
		{
			SectionNumber:    "1.3",
			Title:            "Chart of accounts for budget accounting",
			Content:          "The working chart of accounts is built on the unified chart of accounts for public sector entities (Order of the Ministry of Finance No. 157n) and the budget accounting chart (No. 162n).",
			BudgetAccounting: true,
		},
		{
			SectionNumber:      "1.4",
			Title:              "Chart of accounts for business accounting",
			Content:            "The working chart of accounts is built on the chart of accounts for financial and economic activity (Order of the Ministry of Finance No. 94n).",
			BusinessAccounting: true,
		},
		{
			SectionNumber:      "2.1",
			Title:              "Primary accounting documents",
			Content:            "Primary documents are prepared in electronic form and signed with an enhanced qualified electronic signature. Paper documents are accepted when electronic exchange is not available.",
			BudgetAccounting:   true,
			BusinessAccounting: true,
		},
		{
			SectionNumber:      "2.2",
			Title:              "Inventory of assets and liabilities",
			Content:            "A full inventory is performed annually before preparing the annual financial statements, and also on change of financially responsible persons.",
			BudgetAccounting:   true,
			BusinessAccounting: true,
		},
		{
			SectionNumber:    "3.1",
			Title:            "Fixed assets",
			Content:          "Fixed assets costing up to 10,000 rubles are expensed on commissioning. Depreciation is charged on a straight-line basis under the federal standard \"Fixed Assets\".",
			BudgetAccounting: true,
		},
		{
			SectionNumber:      "3.2",
			Title:              "Fixed assets (FSBU 6/2020)",
			Content:            "The capitalization threshold is 100,000 rubles. Depreciation is charged on a straight-line basis; useful lives are set by the commissioning committee.",
			BusinessAccounting: true,
		},
		{
			SectionNumber:    "3.3",
			Title:            "Medicines and medical supplies",
			Content:          "Medicines and medical supplies are accounted for on account 105.31 at actual cost and written off on the basis of the requirement-invoice of the department.",
			BudgetAccounting: true,
			IndustrySpecific: true,
			Industries:       []string{IndustryHealthcare},
		},
		{
			SectionNumber:    "3.4",
			Title:            "Food products for students",
			Content:          "Food products are accounted for on account 105.32. Write-off is performed on the basis of the menu-requirement for issuing food.",
			BudgetAccounting: true,
			IndustrySpecific: true,
			Industries:       []string{IndustryEducation, IndustryHealthcare},
		},
		{
			SectionNumber:    "3.5",
			Title:            "Museum and library collections",
			Content:          "Museum items and library collections are accounted for off-balance sheet in conventional valuation of one ruble per object.",
			BudgetAccounting: true,
			IndustrySpecific: true,
			Industries:       []string{IndustryCulture},
		},
		{
			SectionNumber:      "3.6",
			Title:              "Construction contracts",
			Content:            "Revenue and expenses under construction contracts are recognized by the degree of completion measured as the share of costs incurred (FSBU 9/2025).",
			BusinessAccounting: true,
			IndustrySpecific:   true,
			Industries:         []string{IndustryConstruction},
		},
		{
			SectionNumber:      "3.7",
			Title:              "Biological assets",
			Content:            "Livestock and perennial plantings are accounted for at actual cost; young animals are revalued at the end of the reporting year.",
			BusinessAccounting: true,
			IndustrySpecific:   true,
			Industries:         []string{IndustryAgriculture},
		},
		{
			SectionNumber:      "4.1",
			Title:              "Revenue from paid services",
			Content:            "Revenue from paid services is recognized on the date the act of services rendered is signed by both parties.",
			BudgetAccounting:   true,
			BusinessAccounting: true,
		},
		{
			SectionNumber:    "4.2",
			Title:            "Deferred revenue and reserves",
			Content:          "Reserves for unused vacations are formed on account 401.60 monthly; deferred revenue is recognized on account 401.40.",
			BudgetAccounting: true,
		},
		{
			SectionNumber:      "5.1",
			Title:              "Financial statements",
			Content:            "Statements are prepared and submitted within the deadlines set by the founder and the tax authority, in the forms approved by the Ministry of Finance.",
			BudgetAccounting:   true,
			BusinessAccounting: true,
		},
	}
}
