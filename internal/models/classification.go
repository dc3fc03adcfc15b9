package models

// AccountCategory identifies the financial statement section an account
// belongs to, derived from the leading digit of its account code.
type AccountCategory string

const (
	CategoryAsset        AccountCategory = "asset"
	CategoryLiability    AccountCategory = "liability"
	CategoryEquity       AccountCategory = "equity"
	CategoryRevenue      AccountCategory = "revenue"
	CategoryCostOfSales  AccountCategory = "cost_of_sales"
	CategoryExpense      AccountCategory = "expense"
	CategoryUnclassified AccountCategory = "unclassified"
)

// AccountSubcategory refines asset/liability/equity categories.
type AccountSubcategory string

const (
	SubcategoryNone             AccountSubcategory = ""
	SubcategoryCurrent          AccountSubcategory = "current"
	SubcategoryNonCurrent       AccountSubcategory = "non_current"
	SubcategoryCapital          AccountSubcategory = "capital"
	SubcategoryReserves         AccountSubcategory = "reserves"
	SubcategoryRetainedEarnings AccountSubcategory = "retained_earnings"
)

// Classification is the result of mapping an account code onto the chart of
// accounts conventions used by the audit engine.
type Classification struct {
	Category    AccountCategory    `json:"category"`
	Subcategory AccountSubcategory `json:"subcategory,omitempty"`
}

// IsClassified reports whether the account code mapped to a known category.
func (c Classification) IsClassified() bool {
	return c.Category != CategoryUnclassified
}

// ClassifyAccountCode maps an account code to its statement category and
// subcategory. The mapping follows the conventional numbering scheme:
// 1xxx assets, 2xxx liabilities, 3xxx equity, 4xxx revenue, 5xxx cost of
// sales, 6xxx expenses. Codes with any other leading character are returned
// as unclassified rather than rejected, so callers can surface them.
func ClassifyAccountCode(code string) Classification {
	if code == "" {
		return Classification{Category: CategoryUnclassified}
	}

	switch code[0] {
	case '1':
		return Classification{Category: CategoryAsset, Subcategory: assetSubcategory(code)}
	case '2':
		return Classification{Category: CategoryLiability, Subcategory: liabilitySubcategory(code)}
	case '3':
		return Classification{Category: CategoryEquity, Subcategory: equitySubcategory(code)}
	case '4':
		return Classification{Category: CategoryRevenue}
	case '5':
		return Classification{Category: CategoryCostOfSales}
	case '6':
		return Classification{Category: CategoryExpense}
	default:
		return Classification{Category: CategoryUnclassified}
	}
}

func hasPrefix(code, prefix string) bool {
	return len(code) >= len(prefix) && code[:len(prefix)] == prefix
}

func assetSubcategory(code string) AccountSubcategory {
	if hasPrefix(code, "14") || hasPrefix(code, "15") {
		return SubcategoryNonCurrent
	}
	return SubcategoryCurrent
}

func liabilitySubcategory(code string) AccountSubcategory {
	if hasPrefix(code, "24") || hasPrefix(code, "25") {
		return SubcategoryNonCurrent
	}
	return SubcategoryCurrent
}

func equitySubcategory(code string) AccountSubcategory {
	switch {
	case hasPrefix(code, "30"):
		return SubcategoryCapital
	case hasPrefix(code, "31"), hasPrefix(code, "32"):
		return SubcategoryReserves
	default:
		return SubcategoryRetainedEarnings
	}
}
