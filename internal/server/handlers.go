package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/studentreport/internal/model"
	"github.com/nao1215/studentreport/internal/report"
)

// studentSummary is the /api/students item.
type studentSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStudents(c *gin.Context) {
	students := s.data.Students()
	out := make([]studentSummary, 0, len(students))
	for _, st := range students {
		out = append(out, studentSummary{ID: st.ID, FirstName: st.FirstName, LastName: st.LastName})
	}
	c.JSON(http.StatusOK, gin.H{"students": out})
}

func (s *Server) handleReport(c *gin.Context) {
	kind, err := model.ParseReportKind(c.Param("kind"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	r, err := s.generator.Build(c.Param("id"), kind)
	if err != nil {
		s.respondError(c, err)
		return
	}

	var buf bytes.Buffer
	w, err := report.NewWriter(format, &buf)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if _, err := w.Write(r); err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, report.ErrStudentNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidReportKind), errors.Is(err, report.ErrUnknownFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("failed to render report", slog.String("path", c.Request.URL.Path), slog.Any("error", err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
