package azure

type OperationStatus string

const (
	OperationStatusSucceeded  OperationStatus = "succeeded"
	OperationStatusRunning    OperationStatus = "running"
	OperationStatusNotStarted OperationStatus = "notStarted"
)

type AnalyzeOperation struct {
	Status OperationStatus `json:"status"`

	Result AnalyzeResult `json:"analyzeResult"`
}

type AnalyzeResult struct {
	ModelID string `json:"modelId"`

	Content string `json:"content"`
	Pages   []Page `json:"pages"`

	Documents []AnalyzedDocument `json:"documents"`
}

type Page struct {
	PageNumber int `json:"pageNumber"`

	Unit   string  `json:"unit"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type AnalyzedDocument struct {
	DocType string `json:"docType"`

	Fields map[string]Field `json:"fields"`

	Confidence float64 `json:"confidence"`
}

type Field struct {
	Type    string `json:"type"`
	Content string `json:"content"`

	ValueString string           `json:"valueString"`
	ValueArray  []Field          `json:"valueArray"`
	ValueObject map[string]Field `json:"valueObject"`

	Confidence float64 `json:"confidence"`
}
