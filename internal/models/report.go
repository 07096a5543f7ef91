// internal/models/report.go
package models

import "time"

// CreditReportSnapshot is a normalized bureau report as delivered by the
// bureau-integration pipeline. The scoring workers treat it as read-only.
type CreditReportSnapshot struct {
	ClientID    string    `json:"clientId"`
	CreditScore int       `json:"creditScore"`
	Accounts    []Account `json:"accounts"`
	Enquiries   []Enquiry `json:"enquiries"`
}

// Account is a single tradeline on the report. PaymentHistoryCode is the
// bureau's compact per-period status string (e.g. "STD|STD|030" or "000000").
type Account struct {
	AccountType        string    `json:"accountType"`
	DateOpened         time.Time `json:"dateOpened"`
	CreditLimit        float64   `json:"creditLimit"`
	HighCredit         float64   `json:"highCredit"`
	CurrentBalance     float64   `json:"currentBalance"`
	PaymentHistoryCode string    `json:"paymentHistoryCode"`
}

// Limit returns the sanctioned limit for utilization math. Bureaus report
// either a credit limit (revolving) or a high-credit figure (term loans).
func (a Account) Limit() float64 {
	if a.CreditLimit > 0 {
		return a.CreditLimit
	}
	return a.HighCredit
}

// Enquiry is a lender's view of the report, usually from a credit application.
type Enquiry struct {
	Date    time.Time `json:"date"`
	Purpose string    `json:"purpose"`
	Amount  float64   `json:"amount"`
}
