// internal/workers/credit/validate-report/models.go
package validatereport

import "encoding/json"

type Input struct {
	CreditReport json.RawMessage `json:"creditReport"`
}

type Output struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
