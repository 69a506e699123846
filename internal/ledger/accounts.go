package ledger

import "github.com/tilikirja-dev/tilikirja/internal/model"

// Resolver provides in-memory lookup over the chart of accounts.
type Resolver struct {
	accounts []model.Account
	byNumber map[string]model.Account
}

// NewResolver creates a Resolver from a slice of accounts.
func NewResolver(accounts []model.Account) *Resolver {
	byNumber := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}
	return &Resolver{accounts: accounts, byNumber: byNumber}
}

// LoadResolver reads the chart of accounts from the store.
func LoadResolver(s *Store) (*Resolver, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return nil, err
	}
	return NewResolver(accounts), nil
}

// All returns all accounts.
func (r *Resolver) All() []model.Account {
	return r.accounts
}

// ByNumber returns an account by exact number match.
func (r *Resolver) ByNumber(number string) (model.Account, bool) {
	a, ok := r.byNumber[number]
	return a, ok
}

// ByType returns all accounts of the given type.
func (r *Resolver) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range r.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
