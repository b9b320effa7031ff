package importer

import (
	"strings"
	"time"

	"registro/internal/registry"
	"registro/pkg/domain"
)

// StudentRecord is one parsed row of a students sheet.
type StudentRecord struct {
	Badge  string
	Name   string
	Groups []string
}

// ReserveRecord is one parsed row of a reservations sheet.
type ReserveRecord struct {
	Badge    string
	Dish     string
	Date     string
	Snack    bool
	Canceled bool
}

// headerAliases maps legacy sheet header names to their canonical keys.
var headerAliases = map[string]string{
	"matrícula iq": "pront",
	"matrícula":    "pront",
	"matricula":    "pront",
	"prontuário":   "pront",
	"prontuario":   "pront",
	"refeição":     "prato",
	"refeicao":     "prato",
}

// truthyValues are cell contents interpreted as true in boolean columns.
var truthyValues = map[string]struct{}{
	"true":      {},
	"1":         {},
	"sim":       {},
	"yes":       {},
	"lanche":    {},
	"cancelado": {},
}

func truthy(cell string) bool {
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(cell))]

	return ok
}

// headerIndex maps canonical column keys to their position in the header row.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if alias, ok := headerAliases[key]; ok {
			key = alias
		}
		index[key] = i
	}

	return index
}

func cell(row []string, index map[string]int, key string) string {
	i, ok := index[key]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

// ParseStudents parses a students sheet into records. The first row must be
// the header. Rows missing a badge or name are skipped and counted.
func ParseStudents(rows [][]string) ([]StudentRecord, int) {
	if len(rows) == 0 {
		return nil, 0
	}

	index := headerIndex(rows[0])

	var skipped int
	records := make([]StudentRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		badge := registry.NormalizeBadge(cell(row, index, "pront"))
		name := registry.CapitalizeName(cell(row, index, "nome"))
		if badge == "" || name == "" {
			skipped++

			continue
		}

		record := StudentRecord{Badge: badge, Name: name}
		for _, group := range strings.Split(cell(row, index, "turma"), ",") {
			if group = strings.TrimSpace(group); group != "" {
				record.Groups = append(record.Groups, group)
			}
		}
		records = append(records, record)
	}

	return records, skipped
}

// ParseReserves parses a reservations sheet into records. The first row must
// be the header. Rows missing a badge or carrying an unparseable date are
// skipped and counted.
func ParseReserves(rows [][]string) ([]ReserveRecord, int) {
	if len(rows) == 0 {
		return nil, 0
	}

	index := headerIndex(rows[0])

	var skipped int
	records := make([]ReserveRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		badge := registry.NormalizeBadge(cell(row, index, "pront"))
		date := cell(row, index, "data")
		if badge == "" {
			skipped++

			continue
		}
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			skipped++

			continue
		}

		records = append(records, ReserveRecord{
			Badge:    badge,
			Dish:     cell(row, index, "prato"),
			Date:     date,
			Snack:    truthy(cell(row, index, "lanche")),
			Canceled: truthy(cell(row, index, "cancelado")),
		})
	}

	return records, skipped
}
