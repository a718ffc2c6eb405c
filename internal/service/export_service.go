package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
	"github.com/edusuite/escolar-api/pkg/export"
)

type exportStore interface {
	FindGroup(id string) (models.Group, bool)
	StudentsInGroup(groupID string) []models.Student
	FindAttendance(studentID, date string) (models.AttendanceRecord, bool)
}

type fileSaver interface {
	Save(filename string, data []byte) (string, error)
	Path(filename string) string
}

// ExportResult describes a generated sheet on disk.
type ExportResult struct {
	Filename    string `json:"filename"`
	Path        string `json:"-"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// ExportService renders group rosters and daily roll-call sheets to
// CSV or PDF files under the exports directory.
type ExportService struct {
	store   exportStore
	storage fileSaver
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs the export service.
func NewExportService(store exportStore, storage fileSaver, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		store:   store,
		storage: storage,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		now:     time.Now,
	}
}

// Roster renders the student roster of one group.
func (s *ExportService) Roster(ctx context.Context, groupID, format string) (*ExportResult, error) {
	group, ok := s.store.FindGroup(groupID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}

	sheet := export.Sheet{Headers: []string{"Matrícula", "Nombre", "Correo", "Estado"}}
	for _, st := range s.store.StudentsInGroup(groupID) {
		sheet.Rows = append(sheet.Rows, []string{st.EnrollmentID, st.Name, st.Email, string(st.Status)})
	}

	title := fmt.Sprintf("Alumnos %s", group.Name)
	return s.render(sheet, title, fmt.Sprintf("roster_%s", group.ID), format)
}

// RollCallSheet renders one group's attendance for a given day.
func (s *ExportService) RollCallSheet(ctx context.Context, groupID, date, format string) (*ExportResult, error) {
	group, ok := s.store.FindGroup(groupID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be formatted YYYY-MM-DD")
	}

	sheet := export.Sheet{Headers: []string{"Matrícula", "Nombre", "Asistencia"}}
	for _, st := range s.store.StudentsInGroup(groupID) {
		mark := "Pendiente"
		if _, present := s.store.FindAttendance(st.ID, date); present {
			mark = "Presente"
		}
		sheet.Rows = append(sheet.Rows, []string{st.EnrollmentID, st.Name, mark})
	}

	title := fmt.Sprintf("Pase de Lista %s %s", group.Name, date)
	return s.render(sheet, title, fmt.Sprintf("rollcall_%s_%s", group.ID, date), format)
}

func (s *ExportService) render(sheet export.Sheet, title, base, format string) (*ExportResult, error) {
	var (
		data        []byte
		err         error
		contentType string
		ext         string
	)
	switch format {
	case "csv", "":
		data, err = s.csv.Render(sheet)
		contentType, ext = "text/csv", "csv"
	case "pdf":
		data, err = s.pdf.Render(sheet, title)
		contentType, ext = "application/pdf", "pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	filename := base + "_" + strconv.FormatInt(s.now().Unix(), 10) + "." + ext
	if _, err := s.storage.Save(filename, data); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export")
	}

	s.logger.Info("export generated", zap.String("file", filename), zap.Int("bytes", len(data)))
	return &ExportResult{
		Filename:    filename,
		Path:        s.storage.Path(filename),
		ContentType: contentType,
		Size:        len(data),
	}, nil
}
