// internal/engine/factors.go
package engine

import (
	"math"
	"strings"
	"time"
	"unicode"

	"credit-workers/internal/models"
)

const (
	// Neutral defaults applied when the report carries no usable data for a
	// factor. These keep the output well-formed for minimal/empty reports.
	defaultPaymentScore   = 85.0
	defaultUtilizationPct = 50.0

	inquiryWindowDays = 180
)

// FactorSet holds the five normalized scoring factors derived from a report.
// It is computed fresh per call and never cached by the engine.
type FactorSet struct {
	PaymentHistory    PaymentHistoryFactor `json:"paymentHistory"`
	CreditUtilization UtilizationFactor    `json:"creditUtilization"`
	CreditAge         CreditAgeFactor      `json:"creditAge"`
	CreditMix         CreditMixFactor      `json:"creditMix"`
	RecentInquiries   InquiryFactor        `json:"recentInquiries"`
}

type PaymentHistoryFactor struct {
	Score  float64 `json:"score"`
	OnTime int     `json:"onTime"`
	Total  int     `json:"total"`
	Rating string  `json:"rating"`
}

type UtilizationFactor struct {
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
	Rating     string  `json:"rating"`
}

type CreditAgeFactor struct {
	Years  float64 `json:"years"`
	Rating string  `json:"rating"`
}

type CreditMixFactor struct {
	Score         int    `json:"score"`
	DistinctTypes int    `json:"distinctTypes"`
	Rating        string `json:"rating"`
}

type InquiryFactor struct {
	Count  int    `json:"count"`
	Rating string `json:"rating"`
}

// ExtractFactors derives the factor set from a snapshot. Pure function: no
// side effects, and irregular nested data degrades to the defaults above.
func ExtractFactors(snap *models.CreditReportSnapshot, now time.Time) FactorSet {
	return FactorSet{
		PaymentHistory:    paymentHistoryFactor(snap.Accounts),
		CreditUtilization: utilizationFactor(snap.Accounts),
		CreditAge:         creditAgeFactor(snap.Accounts, now),
		CreditMix:         creditMixFactor(snap.Accounts),
		RecentInquiries:   inquiryFactor(snap.Enquiries, now),
	}
}

// onTimeTokens is the recognized set of "paid as agreed" statuses across
// bureau formats. "XXX" (not reported) counts as neither on-time nor late.
var onTimeTokens = map[string]bool{
	"0":   true,
	"000": true,
	"STD": true,
	"OK":  true,
}

func paymentHistoryFactor(accounts []models.Account) PaymentHistoryFactor {
	onTime, total := 0, 0
	for _, acc := range accounts {
		for _, tok := range paymentTokens(acc.PaymentHistoryCode) {
			if tok == "XXX" {
				continue
			}
			total++
			if onTimeTokens[tok] {
				onTime++
			}
		}
	}

	score := defaultPaymentScore
	if total > 0 {
		score = float64(onTime) / float64(total) * 100
	}

	rating := "Needs Improvement"
	switch {
	case score >= 95:
		rating = "Excellent"
	case score >= 85:
		rating = "Good"
	}

	return PaymentHistoryFactor{
		Score:  round2(score),
		OnTime: onTime,
		Total:  total,
		Rating: rating,
	}
}

// paymentTokens splits a history code into per-period statuses. Codes are
// pipe/comma/space delimited; a bare all-digit run is a month grid with one
// status digit per period.
func paymentTokens(code string) []string {
	fields := strings.FieldsFunc(code, func(r rune) bool {
		return r == '|' || r == ',' || r == '/' || unicode.IsSpace(r)
	})
	if len(fields) == 1 && len(fields[0]) > 1 && allDigits(fields[0]) {
		grid := make([]string, 0, len(fields[0]))
		for _, r := range fields[0] {
			grid = append(grid, string(r))
		}
		return grid
	}
	return fields
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func utilizationFactor(accounts []models.Account) UtilizationFactor {
	var balance, limit float64
	for _, acc := range accounts {
		if l := acc.Limit(); l > 0 {
			limit += l
			balance += acc.CurrentBalance
		}
	}

	pct := defaultUtilizationPct
	if limit > 0 {
		pct = balance / limit * 100
	}

	rating := "High"
	switch {
	case pct <= 30:
		rating = "Optimal"
	case pct <= 50:
		rating = "Moderate"
	}

	return UtilizationFactor{
		Score:      round2(math.Max(0, 100-pct)),
		Percentage: round2(pct),
		Rating:     rating,
	}
}

func creditAgeFactor(accounts []models.Account, now time.Time) CreditAgeFactor {
	var earliest time.Time
	for _, acc := range accounts {
		if acc.DateOpened.IsZero() {
			continue
		}
		if earliest.IsZero() || acc.DateOpened.Before(earliest) {
			earliest = acc.DateOpened
		}
	}

	years := 0.0
	if !earliest.IsZero() && earliest.Before(now) {
		years = now.Sub(earliest).Hours() / 24 / 365.25
	}

	rating := "Building"
	switch {
	case years >= 7:
		rating = "Excellent"
	case years >= 3:
		rating = "Good"
	}

	return CreditAgeFactor{Years: round2(years), Rating: rating}
}

func creditMixFactor(accounts []models.Account) CreditMixFactor {
	// An unrecognized or missing type is still its own category.
	types := map[string]bool{}
	for _, acc := range accounts {
		types[acc.AccountType] = true
	}

	distinct := len(types)
	score := distinct * 20
	if score > 100 {
		score = 100
	}

	rating := "Limited"
	switch {
	case distinct >= 4:
		rating = "Diverse"
	case distinct >= 2:
		rating = "Good"
	}

	return CreditMixFactor{Score: score, DistinctTypes: distinct, Rating: rating}
}

func inquiryFactor(enquiries []models.Enquiry, now time.Time) InquiryFactor {
	cutoff := now.AddDate(0, 0, -inquiryWindowDays)
	count := 0
	for _, e := range enquiries {
		if !e.Date.IsZero() && !e.Date.Before(cutoff) && !e.Date.After(now) {
			count++
		}
	}

	rating := "High"
	switch {
	case count <= 2:
		rating = "Good"
	case count <= 5:
		rating = "Moderate"
	}

	return InquiryFactor{Count: count, Rating: rating}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
