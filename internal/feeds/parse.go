package feeds

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ParseTemperatureCSV parses the NOAA global land and ocean temperature
// anomaly time series. The file carries four description lines followed
// by a "Year,Value" header and one row per year.
func ParseTemperatureCSV(raw []byte) ([]Record, error) {
	var records []Record
	inData := false

	scanner := bufio.NewScanner(strings.NewReader(string(raw)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !inData {
			if strings.HasPrefix(strings.ToLower(line), "year") {
				inData = true
			}
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		records = append(records, Record{Year: year, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning temperature data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no temperature records found in feed payload")
	}
	return records, nil
}

// ParseCO2AnnualMeans parses the Mauna Loa annual mean CO2 record, a
// whitespace-delimited text file with "#" comment lines and columns
// year, mean and uncertainty.
func ParseCO2AnnualMeans(raw []byte) ([]Record, error) {
	records, err := parseWhitespaceColumns(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing CO2 annual means: %w", err)
	}
	return records, nil
}

// ParseSeaLevelText parses the NASA global mean sea level file, a
// whitespace-delimited text file with columns year, GMSL in millimeters
// and uncertainty.
func ParseSeaLevelText(raw []byte) ([]Record, error) {
	records, err := parseWhitespaceColumns(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing sea level data: %w", err)
	}
	return records, nil
}

// ParseIceExtentCSV parses the NSIDC sea ice index annual CSV. The first
// line is a title row; data rows carry year, extent and area in millions
// of square kilometers.
func ParseIceExtentCSV(raw []byte) ([]Record, error) {
	var records []Record
	lineNum := 0

	scanner := bufio.NewScanner(strings.NewReader(string(raw)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++
		if lineNum == 1 || line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		extent, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		records = append(records, Record{Year: year, Value: extent})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning ice extent data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no ice extent records found in feed payload")
	}
	return records, nil
}

// parseWhitespaceColumns handles the shared NOAA/NASA text layout:
// "#"-prefixed comments, then whitespace-separated year, value and
// optional uncertainty columns.
func parseWhitespaceColumns(raw []byte) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(strings.NewReader(string(raw)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		year, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}

		record := Record{Year: year, Value: value}
		if len(fields) >= 3 {
			if unc, err := strconv.ParseFloat(fields[2], 64); err == nil {
				record.Uncertainty = unc
			}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found in feed payload")
	}
	return records, nil
}
