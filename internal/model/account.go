package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account is one row in the chart of accounts. Number is the user-facing
// account number ("1910"); ID is the database key.
type Account struct {
	ID     int64
	Number string
	Name   string
	Type   AccountType
}
