package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
)

func setupTestExportService(t *testing.T) (*exportService, uint) {
	t.Helper()
	repos := newMockRepos()
	profesor := repos.seedMaestro("Ana", "López")

	materias := NewMateriaService(repos.repo, zap.NewNop())
	id, err := materias.Create(context.Background(), materiaRequest("101", profesor, "08:00", "09:30"))
	if err != nil {
		t.Fatalf("seed materia: %v", err)
	}
	if _, err := materias.Create(context.Background(), materiaRequest("050", profesor, "10:00", "11:00")); err != nil {
		t.Fatalf("seed materia: %v", err)
	}

	svc := &exportService{
		repo:     repos.repo,
		logger:   zap.NewNop(),
		location: time.UTC,
		// Thursday
		now: func() time.Time { return time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC) },
	}
	return svc, id
}

func TestParseDias(t *testing.T) {
	tests := []struct {
		in   string
		want []time.Weekday
	}{
		{"Lunes, Miércoles y Viernes", []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{"MARTES-JUEVES", []time.Weekday{time.Tuesday, time.Thursday}},
		{"sábado lunes lunes", []time.Weekday{time.Monday, time.Saturday}},
		{"LMV", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := ParseDias(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
				break
			}
		}
	}
}

func TestFirstOccurrence(t *testing.T) {
	thursday := time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)

	got := firstOccurrence(thursday, []time.Weekday{time.Monday, time.Wednesday})
	if got.Weekday() != time.Monday || got.Day() != 19 {
		t.Errorf("expected Monday 19, got %v", got)
	}

	got = firstOccurrence(thursday, []time.Weekday{time.Thursday})
	if got.Day() != 15 || got.Hour() != 0 {
		t.Errorf("expected the same day at midnight, got %v", got)
	}
}

func TestExportService_XLSX(t *testing.T) {
	svc, _ := setupTestExportService(t)

	buf, filename, err := svc.ExportMateriasXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportMateriasXLSX should succeed: %v", err)
	}
	if filename != "materias.xlsx" {
		t.Errorf("unexpected filename %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("output should be a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Materias")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "NRC" || rows[1][0] != "050" || rows[2][0] != "101" {
		t.Errorf("rows should be ordered by nrc: %v", rows)
	}
	if rows[2][8] != "Ana López" {
		t.Errorf("expected instructor name, got %q", rows[2][8])
	}
}

func TestExportService_PDF(t *testing.T) {
	svc, _ := setupTestExportService(t)

	buf, filename, err := svc.ExportMateriasPDF(context.Background())
	if err != nil {
		t.Fatalf("ExportMateriasPDF should succeed: %v", err)
	}
	if filename != "materias.pdf" {
		t.Errorf("unexpected filename %s", filename)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output should be a PDF document")
	}
}

func TestExportService_ICS(t *testing.T) {
	svc, id := setupTestExportService(t)

	buf, filename, err := svc.ExportMateriaICS(context.Background(), dto.LookupID(id))
	if err != nil {
		t.Fatalf("ExportMateriaICS should succeed: %v", err)
	}
	if filename != "materia_101.ics" {
		t.Errorf("unexpected filename %s", filename)
	}

	body := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"RRULE:FREQ=WEEKLY;BYDAY=MO,WE",
		"DTSTART:20240819T080000Z",
		"DTEND:20240819T093000Z",
		"LOCATION:CCO1-101",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("calendar should contain %q:\n%s", want, body)
		}
	}
}

func TestExportService_ICS_NotFound(t *testing.T) {
	svc, _ := setupTestExportService(t)

	if _, _, err := svc.ExportMateriaICS(context.Background(), 999); !errors.Is(err, ErrMateriaNotFound) {
		t.Errorf("expected ErrMateriaNotFound, got %v", err)
	}
}
