package property

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a property dataset from a CSV file. The first row must be a
// header; column order is free. Rows with an unparseable id or price are
// skipped rather than failing the whole load.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("property: open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses CSV property data from r.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("property: read csv header: %w", err)
	}
	cols := columnIndex(header)

	var properties []Property
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("property: read csv row: %w", err)
		}
		p, ok := rowToProperty(record, cols)
		if !ok {
			continue
		}
		properties = append(properties, p)
	}
	return NewDataset(properties), nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func rowToProperty(record []string, cols map[string]int) (Property, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id, err := strconv.ParseInt(field("id"), 10, 64)
	if err != nil {
		return Property{}, false
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(field("price"), ",", ""), 64)
	if err != nil {
		return Property{}, false
	}

	p := Property{
		ID:           id,
		Type:         field("type"),
		Location:     field("location"),
		Neighborhood: field("neighborhood"),
		Price:        price,
		Currency:     field("currency"),
		Description:  field("description"),
	}
	p.Bedrooms, _ = strconv.Atoi(field("bedrooms"))
	p.Bathrooms, _ = strconv.Atoi(field("bathrooms"))
	p.AreaM2, _ = strconv.ParseFloat(field("area_m2"), 64)
	if garden := field("garden_area"); garden != "" {
		if v, err := strconv.ParseFloat(garden, 64); err == nil {
			p.GardenArea = &v
		}
	}
	return p, true
}
