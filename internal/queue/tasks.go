package queue

const (
	TypeAdvisoryGenerate = "advisory:generate"
	TypeCaseLawIndex     = "caselaw:index"
)

type AdvisoryGeneratePayload struct {
	DocumentID string `json:"document_id"`
}

// CaseLawIndexPayload carries judgment summaries to embed and index.
type CaseLawIndexPayload struct {
	Cases []CaseInput `json:"cases"`
}

type CaseInput struct {
	Title    string `json:"title"`
	Court    string `json:"court"`
	Year     int    `json:"year"`
	Citation string `json:"citation"`
	Summary  string `json:"summary"`
}
