package submission

// Result is the structured outcome of a submission. The coordinator never
// lets a raw error escape; callers always get one of these.
type Result struct {
	Success   bool   `json:"success"`
	RowNumber int    `json:"rowNumber,omitempty"`
	LogID     string `json:"logId,omitempty"`
	IsUpdate  bool   `json:"isUpdate"`
	Message   string `json:"message,omitempty"`
}
