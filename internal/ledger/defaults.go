package ledger

import "github.com/tilikirja-dev/tilikirja/internal/model"

// DefaultChart returns the default Finnish small-business chart of
// accounts seeded on init.
func DefaultChart() []model.Account {
	return []model.Account{
		{Number: "1700", Name: "Myyntisaamiset", Type: model.AccountTypeAsset},
		{Number: "1910", Name: "Pankkitili", Type: model.AccountTypeAsset},
		{Number: "1920", Name: "Kassa", Type: model.AccountTypeAsset},
		{Number: "2871", Name: "Ostovelat", Type: model.AccountTypeLiability},
		{Number: "2939", Name: "ALV-velka", Type: model.AccountTypeLiability},
		{Number: "2001", Name: "Oma pääoma", Type: model.AccountTypeEquity},
		{Number: "3000", Name: "Myynti", Type: model.AccountTypeRevenue},
		{Number: "3400", Name: "Muut tuotot", Type: model.AccountTypeRevenue},
		{Number: "4000", Name: "Ostot", Type: model.AccountTypeExpense},
		{Number: "6800", Name: "Toimistokulut", Type: model.AccountTypeExpense},
		{Number: "7230", Name: "Vuokrat", Type: model.AccountTypeExpense},
		{Number: "7500", Name: "Pankkikulut", Type: model.AccountTypeExpense},
	}
}
