package loader

import (
	"github.com/nao1215/studentreport/internal/model"
)

// rawQuestion is the on-disk shape of a question. The key, options and
// usually the hint live under config.
type rawQuestion struct {
	ID     string `json:"id"`
	Stem   string `json:"stem"`
	Type   string `json:"type"`
	Strand string `json:"strand"`
	Hint   string `json:"hint"`
	Config struct {
		Key     string         `json:"key"`
		Hint    string         `json:"hint"`
		Options []model.Option `json:"options"`
	} `json:"config"`
}

func (q rawQuestion) toModel() model.Question {
	hint := q.Hint
	if hint == "" {
		hint = q.Config.Hint
	}
	return model.Question{
		ID:      q.ID,
		Stem:    q.Stem,
		Type:    q.Type,
		Strand:  q.Strand,
		Key:     q.Config.Key,
		Options: q.Config.Options,
		Hint:    hint,
	}
}

// rawResponse is the on-disk shape of a response record.
type rawResponse struct {
	ID           string  `json:"id"`
	AssessmentID string  `json:"assessmentId"`
	Completed    *string `json:"completed"`
	Student      struct {
		ID string `json:"id"`
	} `json:"student"`
	Responses []model.ResponseEntry `json:"responses"`
}

// normalizeResponses flattens the student reference and drops attempts
// without a completion timestamp. Source order is kept.
func normalizeResponses(raw []rawResponse) []model.AssessmentResponse {
	out := make([]model.AssessmentResponse, 0, len(raw))
	for _, r := range raw {
		if r.Completed == nil || *r.Completed == "" {
			continue
		}
		out = append(out, model.AssessmentResponse{
			ID:           r.ID,
			StudentID:    r.Student.ID,
			AssessmentID: r.AssessmentID,
			Completed:    *r.Completed,
			Entries:      r.Responses,
		})
	}
	return out
}
