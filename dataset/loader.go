package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/xuri/excelize/v2"
)

// Column headers of the food dataset. The loader trims surrounding
// whitespace from header cells before matching.
const (
	colName           = "Food Name"
	colCategory       = "Category"
	colCalories       = "Calories"
	colCarbs          = "Carbs"
	colFats           = "Fats"
	colProtein        = "Protein"
	colFiber          = "Fiber"
	colGI             = "GI"
	colGL             = "GL"
	colInsulinIndex   = "Insulin Index"
	colProcessedLevel = "Processed Level"
	colRecommendation = "recommendation"
	colPortion        = "portion_guidance"
	colPreparation    = "prepration_method"
)

var featureColumns = []string{
	colCalories, colCarbs, colFats, colProtein,
	colFiber, colGI, colGL, colInsulinIndex,
}

// Load reads the food dataset from disk. The file is parsed as CSV
// first; if that fails it is parsed as an Excel workbook. If both
// parsers fail the dataset is unavailable and the caller must not
// serve recommendation routes.
func Load(path string) ([]Food, error) {
	rows, csvErr := readCSV(path)
	if csvErr != nil {
		var xlsxErr error
		rows, xlsxErr = readExcel(path)
		if xlsxErr != nil {
			return nil, fmt.Errorf("dataset unavailable: csv: %v, excel: %v", csvErr, xlsxErr)
		}
		logger.Info("Dataset parsed as Excel workbook", "path", path)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset unavailable: %s has no data rows", path)
	}

	cols := indexColumns(rows[0])
	if _, ok := cols[colName]; !ok {
		return nil, fmt.Errorf("dataset unavailable: missing %q column", colName)
	}
	for _, fc := range featureColumns {
		if _, ok := cols[fc]; !ok {
			logger.Warn("Feature column missing, treating as zero", "column", fc)
		}
	}

	foods := make([]Food, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, cols, colName))
		if name == "" {
			continue
		}

		f := Food{
			Name:           name,
			Category:       strings.TrimSpace(cell(row, cols, colCategory)),
			Calories:       parseFloat(cell(row, cols, colCalories)),
			Carbs:          parseFloat(cell(row, cols, colCarbs)),
			Fat:            parseFloat(cell(row, cols, colFats)),
			Protein:        parseFloat(cell(row, cols, colProtein)),
			Fiber:          parseFloat(cell(row, cols, colFiber)),
			GlycemicIndex:  parseFloat(cell(row, cols, colGI)),
			GlycemicLoad:   parseFloat(cell(row, cols, colGL)),
			InsulinIndex:   parseFloat(cell(row, cols, colInsulinIndex)),
			ProcessedLevel: strings.TrimSpace(cell(row, cols, colProcessedLevel)),
			Recommendation: strings.TrimSpace(cell(row, cols, colRecommendation)),
			Portion:        strings.TrimSpace(cell(row, cols, colPortion)),
			Preparation:    strings.TrimSpace(cell(row, cols, colPreparation)),
		}
		f.Group = Categorize(f.Category)
		f.DiabeticFriendly = IsDiabeticFriendly(&f)
		foods = append(foods, f)
	}

	logger.Info("Food dataset loaded", "path", path, "foods", len(foods))
	return foods, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // rows may be ragged
	return reader.ReadAll()
}

func readExcel(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return wb.GetRows(sheets[0])
}

// indexColumns maps trimmed header names to their column position.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	return cols
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseFloat coerces a cell to a number; blank or malformed cells
// count as zero, mirroring how the dataset treats missing values.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
