package loader

import "path/filepath"

// Default source file names inside a data directory.
const (
	DefaultStudentsFile    = "students.json"
	DefaultAssessmentsFile = "assessments.json"
	DefaultQuestionsFile   = "questions.json"
	DefaultResponsesFile   = "student-responses.json"
)

// Sources names the four data files. Relative file names are resolved
// against Dir.
type Sources struct {
	Dir         string
	Students    string
	Assessments string
	Questions   string
	Responses   string
}

// DefaultSources returns the default file names inside dir.
func DefaultSources(dir string) Sources {
	return Sources{
		Dir:         dir,
		Students:    DefaultStudentsFile,
		Assessments: DefaultAssessmentsFile,
		Questions:   DefaultQuestionsFile,
		Responses:   DefaultResponsesFile,
	}
}

// path resolves a source file name against Dir.
func (s Sources) path(name string) string {
	if filepath.IsAbs(name) || s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// StudentsPath returns the resolved path of the students source.
func (s Sources) StudentsPath() string { return s.path(s.Students) }

// AssessmentsPath returns the resolved path of the assessments source.
func (s Sources) AssessmentsPath() string { return s.path(s.Assessments) }

// QuestionsPath returns the resolved path of the questions source.
func (s Sources) QuestionsPath() string { return s.path(s.Questions) }

// ResponsesPath returns the resolved path of the responses source.
func (s Sources) ResponsesPath() string { return s.path(s.Responses) }
