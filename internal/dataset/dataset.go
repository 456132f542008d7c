package dataset

import (
	"github.com/nao1215/studentreport/internal/model"
)

// Dataset is an immutable in-memory view over the four source collections.
type Dataset struct {
	students    []model.Student
	assessments []model.Assessment
	questions   []model.Question
	responses   []model.AssessmentResponse

	studentIndex    map[string]int
	assessmentIndex map[string]int
	questionIndex   map[string]int
}

// Counts holds the number of records in each collection.
type Counts struct {
	Students    int
	Assessments int
	Questions   int
	Responses   int
}

// New builds a Dataset from already-normalized records.
// The slices are copied, so the caller may reuse them afterwards.
// When an id appears more than once the first record wins.
func New(
	students []model.Student,
	assessments []model.Assessment,
	questions []model.Question,
	responses []model.AssessmentResponse,
) *Dataset {
	d := &Dataset{
		students:    append([]model.Student(nil), students...),
		assessments: append([]model.Assessment(nil), assessments...),
		questions:   append([]model.Question(nil), questions...),
		responses:   append([]model.AssessmentResponse(nil), responses...),
	}

	d.studentIndex = make(map[string]int, len(d.students))
	for i, s := range d.students {
		if _, ok := d.studentIndex[s.ID]; !ok {
			d.studentIndex[s.ID] = i
		}
	}

	d.assessmentIndex = make(map[string]int, len(d.assessments))
	for i, a := range d.assessments {
		if _, ok := d.assessmentIndex[a.ID]; !ok {
			d.assessmentIndex[a.ID] = i
		}
	}

	d.questionIndex = make(map[string]int, len(d.questions))
	for i, q := range d.questions {
		if _, ok := d.questionIndex[q.ID]; !ok {
			d.questionIndex[q.ID] = i
		}
	}

	return d
}

// FindStudent returns the student with the given id.
func (d *Dataset) FindStudent(id string) (model.Student, bool) {
	i, ok := d.studentIndex[id]
	if !ok {
		return model.Student{}, false
	}
	return d.students[i], true
}

// FindAssessment returns the assessment with the given id.
func (d *Dataset) FindAssessment(id string) (model.Assessment, bool) {
	i, ok := d.assessmentIndex[id]
	if !ok {
		return model.Assessment{}, false
	}
	return d.assessments[i], true
}

// FindQuestion returns the question with the given id.
func (d *Dataset) FindQuestion(id string) (model.Question, bool) {
	i, ok := d.questionIndex[id]
	if !ok {
		return model.Question{}, false
	}
	return d.questions[i], true
}

// CompletedResponsesForStudent returns the completed responses of a student
// in source order. The returned slice is owned by the caller.
func (d *Dataset) CompletedResponsesForStudent(studentID string) []model.AssessmentResponse {
	var out []model.AssessmentResponse
	for _, r := range d.responses {
		if r.StudentID == studentID && r.IsCompleted() {
			out = append(out, r)
		}
	}
	return out
}

// Students returns all students in source order.
func (d *Dataset) Students() []model.Student {
	return append([]model.Student(nil), d.students...)
}

// Counts returns the number of records held in each collection.
func (d *Dataset) Counts() Counts {
	return Counts{
		Students:    len(d.students),
		Assessments: len(d.assessments),
		Questions:   len(d.questions),
		Responses:   len(d.responses),
	}
}
