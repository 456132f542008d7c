package report

import (
	"slices"
	"time"

	"github.com/nao1215/studentreport/internal/model"
)

// timedResponse pairs a response with its parsed completion time.
type timedResponse struct {
	response  model.AssessmentResponse
	completed time.Time
}

// parseAll parses the completion time of every response, keeping order.
func parseAll(responses []model.AssessmentResponse) ([]timedResponse, error) {
	out := make([]timedResponse, 0, len(responses))
	for _, r := range responses {
		t, err := ParseCompleted(r.Completed)
		if err != nil {
			return nil, err
		}
		out = append(out, timedResponse{response: r, completed: t})
	}
	return out, nil
}

// latestResponse returns the response with the newest completion time.
// On a tie the earlier response in source order is kept.
func latestResponse(responses []model.AssessmentResponse) (timedResponse, error) {
	timed, err := parseAll(responses)
	if err != nil {
		return timedResponse{}, err
	}

	latest := timed[0]
	for _, tr := range timed[1:] {
		if tr.completed.After(latest.completed) {
			latest = tr
		}
	}
	return latest, nil
}

// chronological returns the responses sorted oldest first. Responses with
// equal times keep their source order.
func chronological(responses []model.AssessmentResponse) ([]timedResponse, error) {
	timed, err := parseAll(responses)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(timed, func(a, b timedResponse) int {
		return a.completed.Compare(b.completed)
	})
	return timed, nil
}

// strandResults groups the entries of r by question strand in first-seen
// order. Entries whose question is unknown are skipped.
func (g *Generator) strandResults(r model.AssessmentResponse) []model.StrandResult {
	var results []model.StrandResult
	index := make(map[string]int)

	for _, e := range r.Entries {
		q, ok := g.data.FindQuestion(e.QuestionID)
		if !ok {
			g.logger.Debug("skipping entry with unknown question",
				"response", r.ID,
				"question", e.QuestionID,
			)
			continue
		}

		i, seen := index[q.Strand]
		if !seen {
			i = len(results)
			index[q.Strand] = i
			results = append(results, model.StrandResult{Strand: q.Strand})
		}

		results[i].Total++
		if q.IsCorrect(e.Answer) {
			results[i].Correct++
		}
	}
	return results
}

// rawScore counts the entries of r answered correctly. Entries whose
// question is unknown never count.
func (g *Generator) rawScore(r model.AssessmentResponse) int {
	correct := 0
	for _, e := range r.Entries {
		q, ok := g.data.FindQuestion(e.QuestionID)
		if ok && q.IsCorrect(e.Answer) {
			correct++
		}
	}
	return correct
}
