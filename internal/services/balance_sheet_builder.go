package services

import (
	"time"

	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
)

// BuildBalanceSheet partitions the classified trial balance into assets,
// liabilities and equity sections. total_assets and total_liabilities_equity
// are both published without cross-asserting equality; the caller reports the
// discrepancy through the generation result's diagnostics.
func BuildBalanceSheet(project *models.Project, entries []models.TrialBalanceEntry, generatedAt time.Time) *models.BalanceSheetBody {
	assets := models.BalanceSheetAssets{
		CurrentAssets:         map[string]models.AccountLine{},
		NonCurrentAssets:      map[string]models.AccountLine{},
		TotalCurrentAssets:    decimal.Zero,
		TotalNonCurrentAssets: decimal.Zero,
		TotalAssets:           decimal.Zero,
	}
	liabilities := models.BalanceSheetLiabilities{
		CurrentLiabilities:         map[string]models.AccountLine{},
		NonCurrentLiabilities:      map[string]models.AccountLine{},
		TotalCurrentLiabilities:    decimal.Zero,
		TotalNonCurrentLiabilities: decimal.Zero,
		TotalLiabilities:           decimal.Zero,
	}
	capital, reserves, retainedEarnings := decimal.Zero, decimal.Zero, decimal.Zero

	for i := range entries {
		entry := &entries[i]
		classification := entry.Classify()
		amount := entry.Balance()

		switch classification.Category {
		case models.CategoryAsset:
			if classification.Subcategory == models.SubcategoryNonCurrent {
				assets.NonCurrentAssets[entry.AccountCode] = newAccountLine(entry)
				assets.TotalNonCurrentAssets = assets.TotalNonCurrentAssets.Add(amount)
			} else {
				assets.CurrentAssets[entry.AccountCode] = newAccountLine(entry)
				assets.TotalCurrentAssets = assets.TotalCurrentAssets.Add(amount)
			}
		case models.CategoryLiability:
			if classification.Subcategory == models.SubcategoryNonCurrent {
				liabilities.NonCurrentLiabilities[entry.AccountCode] = newAccountLine(entry)
				liabilities.TotalNonCurrentLiabilities = liabilities.TotalNonCurrentLiabilities.Add(amount)
			} else {
				liabilities.CurrentLiabilities[entry.AccountCode] = newAccountLine(entry)
				liabilities.TotalCurrentLiabilities = liabilities.TotalCurrentLiabilities.Add(amount)
			}
		case models.CategoryEquity:
			switch classification.Subcategory {
			case models.SubcategoryCapital:
				capital = capital.Add(amount)
			case models.SubcategoryReserves:
				reserves = reserves.Add(amount)
			default:
				retainedEarnings = retainedEarnings.Add(amount)
			}
		}
	}

	assets.TotalAssets = round(assets.TotalCurrentAssets.Add(assets.TotalNonCurrentAssets))
	assets.TotalCurrentAssets = round(assets.TotalCurrentAssets)
	assets.TotalNonCurrentAssets = round(assets.TotalNonCurrentAssets)

	liabilities.TotalLiabilities = round(liabilities.TotalCurrentLiabilities.Add(liabilities.TotalNonCurrentLiabilities))
	liabilities.TotalCurrentLiabilities = round(liabilities.TotalCurrentLiabilities)
	liabilities.TotalNonCurrentLiabilities = round(liabilities.TotalNonCurrentLiabilities)

	equity := models.BalanceSheetEquity{
		Capital:          round(capital),
		Reserves:         round(reserves),
		RetainedEarnings: round(retainedEarnings),
		TotalEquity:      round(capital.Add(reserves).Add(retainedEarnings)),
	}

	return &models.BalanceSheetBody{
		StatementHeader:        newStatementHeader(project, generatedAt),
		Assets:                 assets,
		Liabilities:            liabilities,
		Equity:                 equity,
		TotalLiabilitiesEquity: liabilities.TotalLiabilities.Add(equity.TotalEquity),
	}
}
