package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/studentreport/internal/dataset"
	"github.com/nao1215/studentreport/internal/model"
)

const (
	strandNumber      = "Number and Algebra"
	strandMeasurement = "Measurement and Geometry"
	strandStatistics  = "Statistics and Probability"
)

// numeracyQuestions returns 16 questions: 6 in Number and Algebra, 5 in
// Measurement and Geometry and 5 in Statistics and Probability. Every key
// is "option3".
func numeracyQuestions() []model.Question {
	questions := make([]model.Question, 0, 16)
	for i := 1; i <= 16; i++ {
		strand := strandNumber
		switch {
		case i > 11:
			strand = strandStatistics
		case i > 6:
			strand = strandMeasurement
		}
		questions = append(questions, model.Question{
			ID:     fmt.Sprintf("numeracy%d", i),
			Stem:   fmt.Sprintf("Question %d", i),
			Type:   "multiple-choice",
			Strand: strand,
			Key:    "option3",
			Options: []model.Option{
				{ID: "option1", Label: "A", Value: "1"},
				{ID: "option2", Label: "B", Value: "2"},
				{ID: "option3", Label: "C", Value: "3"},
				{ID: "option4", Label: "D", Value: "4"},
			},
			Hint: fmt.Sprintf("Hint for question %d", i),
		})
	}
	return questions
}

// numeracyEntries answers the first correct questions right and the rest
// with "option1".
func numeracyEntries(correct int) []model.ResponseEntry {
	entries := make([]model.ResponseEntry, 0, 16)
	for i := 1; i <= 16; i++ {
		answer := "option1"
		if i <= correct {
			answer = "option3"
		}
		entries = append(entries, model.ResponseEntry{
			QuestionID: fmt.Sprintf("numeracy%d", i),
			Answer:     answer,
		})
	}
	return entries
}

// newFixture builds a data set with:
//   - student1 Tony Stark: three Numeracy attempts scoring 6, 10 and 15
//     out of 16, stored out of date order, plus one incomplete attempt
//   - student2 Steve Rogers: only an incomplete attempt
//   - student3 Peter Parker: an attempt with an unknown question and a
//     question whose options lack its key
//   - student4 Bruce Banner: an attempt at an unknown assessment
//   - student5 Natasha Romanoff: an attempt with a malformed timestamp
func newFixture() *dataset.Dataset {
	students := []model.Student{
		{ID: "student1", FirstName: "Tony", LastName: "Stark"},
		{ID: "student2", FirstName: "Steve", LastName: "Rogers"},
		{ID: "student3", FirstName: "Peter", LastName: "Parker"},
		{ID: "student4", FirstName: "Bruce", LastName: "Banner"},
		{ID: "student5", FirstName: "Natasha", LastName: "Romanoff"},
	}

	questions := numeracyQuestions()
	questions = append(questions, model.Question{
		ID:      "broken1",
		Strand:  strandNumber,
		Key:     "option9",
		Options: []model.Option{{ID: "option1", Label: "A", Value: "1"}},
		Hint:    "Broken hint",
	})

	questionIDs := make([]string, 0, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.ID)
	}
	assessments := []model.Assessment{
		{ID: "assessment1", Name: "Numeracy", QuestionIDs: questionIDs},
	}

	responses := []model.AssessmentResponse{
		{ID: "studentReponse2", StudentID: "student1", AssessmentID: "assessment1", Completed: "16/12/2020 10:46:00", Entries: numeracyEntries(10)},
		{ID: "studentReponse3", StudentID: "student1", AssessmentID: "assessment1", Completed: "16/12/2021 10:46:00", Entries: numeracyEntries(15)},
		{ID: "studentReponse1", StudentID: "student1", AssessmentID: "assessment1", Completed: "16/12/2019 10:46:00", Entries: numeracyEntries(6)},
		{ID: "studentReponse4", StudentID: "student1", AssessmentID: "assessment1", Entries: numeracyEntries(16)},
		{ID: "studentReponse5", StudentID: "student2", AssessmentID: "assessment1", Entries: numeracyEntries(3)},
		{
			ID: "studentReponse6", StudentID: "student3", AssessmentID: "assessment1", Completed: "01/02/2022 14:05:09",
			Entries: []model.ResponseEntry{
				{QuestionID: "numeracy1", Answer: "option3"},
				{QuestionID: "unknown1", Answer: "option3"},
				{QuestionID: "broken1", Answer: "option1"},
				{QuestionID: "numeracy7", Answer: "option2"},
			},
		},
		{ID: "studentReponse7", StudentID: "student4", AssessmentID: "assessment9", Completed: "16/12/2021 10:46:00", Entries: numeracyEntries(1)},
		{ID: "studentReponse8", StudentID: "student5", AssessmentID: "assessment1", Completed: "2021-12-16T10:46:00Z", Entries: numeracyEntries(1)},
	}

	return dataset.New(students, assessments, questions, responses)
}

func newTestGenerator() *Generator {
	return NewGenerator(newFixture(), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

// newDecliningGenerator builds a generator over one student whose newer
// Numeracy attempt scores 4 after an older one scoring 10. The newer
// attempt is stored first.
func newDecliningGenerator() *Generator {
	data := dataset.New(
		[]model.Student{{ID: "student1", FirstName: "Wanda", LastName: "Maximoff"}},
		[]model.Assessment{{ID: "assessment1", Name: "Numeracy"}},
		numeracyQuestions(),
		[]model.AssessmentResponse{
			{ID: "attempt2", StudentID: "student1", AssessmentID: "assessment1", Completed: "16/12/2021 10:46:00", Entries: numeracyEntries(4)},
			{ID: "attempt1", StudentID: "student1", AssessmentID: "assessment1", Completed: "16/12/2020 10:46:00", Entries: numeracyEntries(10)},
		},
	)
	return NewGenerator(data, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}
