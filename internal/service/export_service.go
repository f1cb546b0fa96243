package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"
	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
	apperrors "github.com/Yojipoji28/control-escolar-desit-api/pkg/errors"
)

// ── export errors ──

var ErrDiasSinReconocer = apperrors.Validation("No se reconocen los días de la materia.")

// ExportService materia listings as downloadable files.
//
// Files are returned as a buffer plus a suggested filename; the handler sets
// the response headers.
type ExportService interface {
	// ExportMateriasXLSX every materia ordered by nrc, one row each.
	ExportMateriasXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportMateriasPDF same listing as a landscape A4 table.
	ExportMateriasPDF(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportMateriaICS weekly recurring event for one materia.
	ExportMateriaICS(ctx context.Context, id dto.LookupID) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo     *repository.Repository
	logger   *zap.Logger
	now      func() time.Time
	location *time.Location
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{
		repo:     repo,
		logger:   logger,
		now:      time.Now,
		location: time.Local,
	}
}

var materiaColumns = []struct {
	title string
	width float64 // xlsx characters
	mm    float64 // pdf millimetres
}{
	{"NRC", 10, 16},
	{"Materia", 32, 50},
	{"Sección", 10, 16},
	{"Días", 22, 30},
	{"Hora inicio", 12, 20},
	{"Hora fin", 12, 20},
	{"Salón", 12, 18},
	{"Programa educativo", 30, 45},
	{"Profesor", 30, 45},
	{"Créditos", 10, 17},
}

func materiaRow(m *dto.MateriaResponse) []string {
	return []string{
		m.NRC,
		m.NombreMateria,
		m.Seccion,
		m.Dias,
		m.HoraInicio,
		m.HoraFin,
		m.Salon,
		m.ProgramaEducativo,
		m.ProfesorNombre,
		strconv.Itoa(m.Creditos),
	}
}

func (s *exportService) listMaterias(ctx context.Context) ([]dto.MateriaResponse, error) {
	materias, err := s.repo.Materia.List(ctx)
	if err != nil {
		s.logger.Error("error al listar materias para exportar", zap.Error(err))
		return nil, err
	}
	result := make([]dto.MateriaResponse, 0, len(materias))
	for i := range materias {
		result = append(result, toMateriaResponse(&materias[i]))
	}
	return result, nil
}

// ────────────────────── XLSX ──────────────────────

func (s *exportService) ExportMateriasXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	materias, err := s.listMaterias(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Materias"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, col := range materiaColumns {
		name := colName(i)
		f.SetColWidth(sheet, name, name, col.width)
		f.SetCellValue(sheet, cell(name, 1), col.title)
	}
	f.SetCellStyle(sheet, "A1", cell(colName(len(materiaColumns)-1), 1), headerStyle)

	for r := range materias {
		m := &materias[r]
		row := r + 2
		for i, value := range materiaRow(m) {
			if i == len(materiaColumns)-1 {
				f.SetCellValue(sheet, cell(colName(i), row), m.Creditos)
				continue
			}
			f.SetCellValue(sheet, cell(colName(i), row), value)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("error al escribir xlsx", zap.Error(err))
		return nil, "", err
	}
	return buf, "materias.xlsx", nil
}

// ────────────────────── PDF ──────────────────────

func (s *exportService) ExportMateriasPDF(ctx context.Context) (*bytes.Buffer, string, error) {
	materias, err := s.listMaterias(ctx)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Materias", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Materias registradas"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Generado: %s", s.now().In(s.location).Format("2006-01-02 15:04"))))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(31, 78, 121)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range materiaColumns {
		pdf.CellFormat(col.mm, 7, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i := range materias {
		for c, value := range materiaRow(&materias[i]) {
			pdf.CellFormat(materiaColumns[c].mm, 6, tr(truncate(value, materiaColumns[c].mm)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		s.logger.Error("error al escribir pdf", zap.Error(err))
		return nil, "", err
	}
	return buf, "materias.pdf", nil
}

// truncate keeps roughly what fits an 8pt Helvetica cell of width mm.
func truncate(s string, mm float64) string {
	limit := int(mm / 1.6)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// ────────────────────── ICS ──────────────────────

func (s *exportService) ExportMateriaICS(ctx context.Context, id dto.LookupID) (*bytes.Buffer, string, error) {
	if id == 0 {
		return nil, "", ErrMateriaNotFound
	}
	materia, err := s.repo.Materia.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrMateriaNotFound
		}
		s.logger.Error("error al consultar materia", zap.Uint("id", uint(id)), zap.Error(err))
		return nil, "", err
	}
	m := toMateriaResponse(materia)

	days := ParseDias(m.Dias)
	if len(days) == 0 {
		return nil, "", ErrDiasSinReconocer
	}
	inicio, err := ParseHora(m.HoraInicio)
	if err != nil {
		return nil, "", ErrHoraInvalida
	}
	fin, err := ParseHora(m.HoraFin)
	if err != nil {
		return nil, "", ErrHoraInvalida
	}

	now := s.now().In(s.location)
	first := firstOccurrence(now, days)
	start := atHora(first, inicio)
	end := atHora(first, fin)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//control-escolar//materias//ES")

	event := cal.AddEvent(fmt.Sprintf("materia-%d-%s@control-escolar", m.ID, m.NRC))
	event.SetDtStampTime(now)
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(fmt.Sprintf("%s (%s)", m.NombreMateria, m.NRC))
	event.SetLocation(m.Salon)
	description := fmt.Sprintf("Sección %s. %s.", m.Seccion, m.ProgramaEducativo)
	if m.ProfesorNombre != "" {
		description += " Profesor: " + m.ProfesorNombre + "."
	}
	event.SetDescription(description)
	event.AddProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;BYDAY="+byDay(days))

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("materia_%s.ics", m.NRC), nil
}

var diasSemana = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,
}

var rruleDias = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// ParseDias extracts the weekdays named in a free-text "dias" value such as
// "Lunes, Miércoles y Viernes". Result is in Monday-first order without duplicates.
func ParseDias(dias string) []time.Weekday {
	words := strings.FieldsFunc(sinAcentos(strings.ToLower(dias)), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	seen := make(map[time.Weekday]bool)
	for _, w := range words {
		if d, ok := diasSemana[w]; ok {
			seen[d] = true
		}
	}

	var result []time.Weekday
	for _, d := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	} {
		if seen[d] {
			result = append(result, d)
		}
	}
	return result
}

func sinAcentos(s string) string {
	return strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").Replace(s)
}

func byDay(days []time.Weekday) string {
	codes := make([]string, 0, len(days))
	for _, d := range days {
		codes = append(codes, rruleDias[d])
	}
	return strings.Join(codes, ",")
}

// firstOccurrence the first date on or after now falling on one of days.
func firstOccurrence(now time.Time, days []time.Weekday) time.Time {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for offset := 0; offset < 7; offset++ {
		candidate := date.AddDate(0, 0, offset)
		for _, d := range days {
			if candidate.Weekday() == d {
				return candidate
			}
		}
	}
	return date
}

func atHora(date, hora time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		hora.Hour(), hora.Minute(), hora.Second(), hora.Nanosecond(), date.Location())
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
