package model

// Student is a learner who sits assessments.
type Student struct {
	// ID is the student identifier used by response records (e.g. "student1").
	ID string `json:"id"`

	// FirstName is the student's given name.
	FirstName string `json:"firstName"`

	// LastName is the student's family name.
	LastName string `json:"lastName"`
}

// FullName returns "{FirstName} {LastName}" as used in report sentences.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
