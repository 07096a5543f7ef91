// internal/engine/recommend.go
package engine

type Recommendation struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Timeframe   string `json:"timeframe"`
	Icon        string `json:"icon"`
}

// Recommend converts factor state into prioritized advice. Rules run in a
// fixed order, each adding at most one item, and the output always ends with
// the monitoring item. Same snapshot in, same list out.
func Recommend(f FactorSet) []Recommendation {
	recs := []Recommendation{}

	if f.CreditUtilization.Percentage > 50 {
		recs = append(recs, Recommendation{
			Priority:    "critical",
			Title:       "Reduce Card Balances Immediately",
			Description: "Your utilization is above 50% of available credit. Pay down revolving balances before the next statement cycle.",
			Impact:      "+30-50 points",
			Timeframe:   "1-2 months",
			Icon:        "alert-octagon",
		})
	} else if f.CreditUtilization.Percentage > 30 {
		recs = append(recs, Recommendation{
			Priority:    "high",
			Title:       "Optimize Credit Utilization",
			Description: "Bring utilization under 30% by paying down balances or requesting a limit increase.",
			Impact:      "+15-25 points",
			Timeframe:   "1-2 months",
			Icon:        "credit-card",
		})
	}

	if f.PaymentHistory.Score < 95 {
		recs = append(recs, Recommendation{
			Priority:    "high",
			Title:       "Never Miss a Payment",
			Description: "Set up auto-pay for at least the minimum due on every account. Payment history is the single largest score factor.",
			Impact:      "+20-40 points",
			Timeframe:   "3-6 months",
			Icon:        "calendar-check",
		})
	}

	if f.CreditAge.Years < 3 {
		recs = append(recs, Recommendation{
			Priority:    "medium",
			Title:       "Build Credit History",
			Description: "Keep your oldest accounts open and active; account age compounds quietly in your favor.",
			Impact:      "+10-20 points",
			Timeframe:   "6-12 months",
			Icon:        "clock",
		})
	}

	if f.CreditMix.DistinctTypes < 3 {
		recs = append(recs, Recommendation{
			Priority:    "low",
			Title:       "Diversify Credit Types",
			Description: "A healthy mix of revolving and installment credit signals experience with different obligations.",
			Impact:      "+5-15 points",
			Timeframe:   "6-12 months",
			Icon:        "layers",
		})
	}

	if f.RecentInquiries.Count > 4 {
		recs = append(recs, Recommendation{
			Priority:    "medium",
			Title:       "Limit New Credit Applications",
			Description: "Multiple recent enquiries flag credit hunger to lenders. Hold off on new applications for a few months.",
			Impact:      "+5-10 points",
			Timeframe:   "3-6 months",
			Icon:        "file-minus",
		})
	}

	recs = append(recs, Recommendation{
		Priority:    "info",
		Title:       "Monitor Your Credit Report",
		Description: "Review your report monthly for errors and unrecognized accounts; dispute inaccuracies promptly.",
		Impact:      "Preventive",
		Timeframe:   "Ongoing",
		Icon:        "eye",
	})

	return recs
}
