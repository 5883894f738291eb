package routine

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Row - одна строка экспорта, одно упражнение.
type Row struct {
	Routine    string
	Goal       string
	Difficulty string
	Day        string
	Exercise   string
	Sets       string
	Reps       string
	Rest       string
}

var csvHeader = []string{"Routine", "Goal", "Difficulty", "Day", "Exercise", "Sets", "Reps", "Rest"}

// ToRows разворачивает программу в плоские строки. Порядок - как в
// самой программе: дни по порядку, упражнения внутри дня по порядку,
// никакой пересортировки.
func ToRows(r *models.Routine) []Row {
	var rows []Row
	for _, d := range r.Days {
		for _, e := range d.Exercises {
			rows = append(rows, Row{
				Routine:    r.Name,
				Goal:       r.Goal,
				Difficulty: r.Difficulty,
				Day:        d.Day,
				Exercise:   e.Name,
				Sets:       e.Sets,
				Reps:       e.Reps,
				Rest:       e.Rest,
			})
		}
	}
	return rows
}

// WriteCSV пишет строки с заголовком, поля через запятую.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Routine, r.Goal, r.Difficulty, r.Day, r.Exercise, r.Sets, r.Reps, r.Rest}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalCSV возвращает экспорт текстом.
func MarshalCSV(rows []Row) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseCSV читает текст, созданный WriteCSV, обратно в строки.
// Восстанавливается только плоский список - собирать из него
// вложенную программу не требуется.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("чтение заголовка: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("ожидался заголовок из %d полей, получено %d", len(csvHeader), len(header))
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("неверный заголовок: поле %d = %q, ожидалось %q", i, header[i], name)
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Routine:    record[0],
			Goal:       record[1],
			Difficulty: record[2],
			Day:        record[3],
			Exercise:   record[4],
			Sets:       record[5],
			Reps:       record[6],
			Rest:       record[7],
		})
	}
	return rows, nil
}

// ExportFilename строит имя файла выгрузки: пробельные символы в
// имени программы заменяются подчеркиванием.
func ExportFilename(routineName string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, routineName)
	return mapped + ".csv"
}
