package finance

// UserSummary is one row of the registry summary: the at-a-glance state of a
// single user's ledger.
type UserSummary struct {
	Name          string
	Transactions  int
	FirstActivity Date // zero date when the ledger is empty
	LastActivity  Date // zero date when the ledger is empty
	TotalIncome   Amount
	TotalExpenses Amount
	Balance       Amount
}

// Summary provides an overview of every user in the registry, with grand
// totals across all ledgers.
type Summary struct {
	Users         []UserSummary
	TotalIncome   Amount
	TotalExpenses Amount
	TotalBalance  Amount
}

// NewSummary computes a summary of all ledgers in the registry. Rows are in
// sorted user name order.
func NewSummary(reg *Registry) *Summary {
	s := &Summary{}
	for ledger := range reg.Users() {
		row := UserSummary{
			Name:          ledger.Name(),
			Transactions:  ledger.Len(),
			FirstActivity: ledger.OldestTransactionDate(),
			LastActivity:  ledger.NewestTransactionDate(),
			TotalIncome:   ledger.TotalIncome(),
			TotalExpenses: ledger.TotalExpenses(),
			Balance:       ledger.Balance(),
		}
		s.Users = append(s.Users, row)
		s.TotalIncome = s.TotalIncome.Add(row.TotalIncome)
		s.TotalExpenses = s.TotalExpenses.Add(row.TotalExpenses)
		s.TotalBalance = s.TotalBalance.Add(row.Balance)
	}
	return s
}
