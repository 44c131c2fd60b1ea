package ocr

import "regexp"

// MedicalInfo holds the crude token extraction over recognized report
// text. This is a best-effort regex pass, not medical NLP.
type MedicalInfo struct {
	Medications []string `json:"medications"`
	Dosages     []string `json:"dosages"`
	FullText    string   `json:"fullText"`
}

var (
	// Capitalized words (optionally multi-word) are treated as
	// candidate medication names.
	medicationRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

	// Amounts in mg/ml and "N times a day" phrases.
	dosageRe = regexp.MustCompile(`\d+\s*mg|\d+\s*ml|\d+\s*times\s*a\s*day`)
)

// ExtractMedicalInfo pulls medication and dosage tokens out of
// recognized text. Duplicates are dropped, first occurrence wins.
func ExtractMedicalInfo(text string) MedicalInfo {
	return MedicalInfo{
		Medications: dedupe(medicationRe.FindAllString(text, -1)),
		Dosages:     dedupe(dosageRe.FindAllString(text, -1)),
		FullText:    text,
	}
}

func dedupe(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
