package analytics

import (
	"math"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
)

// DetailedScoreCalculator turns an attempt's answers into raw, scaled and
// percentile scores.
type DetailedScoreCalculator struct {
	converter *ScoreConverter
}

func NewDetailedScoreCalculator(converter *ScoreConverter) *DetailedScoreCalculator {
	if converter == nil {
		converter = NewScoreConverter()
	}
	return &DetailedScoreCalculator{converter: converter}
}

// FoldModuleTotals counts answers and correct answers per module. Answers
// whose question is unresolved carry no module and are skipped.
func FoldModuleTotals(answers []models.AnsweredQuestion) models.ModuleTotals {
	totals := make(models.ModuleTotals, len(models.SATModules))
	for _, m := range models.SATModules {
		totals[m] = models.ModuleTotal{}
	}

	for _, a := range answers {
		if a.Question == nil {
			continue
		}
		mt := totals[a.Question.ModuleType]
		mt.Total++
		if a.IsCorrect {
			mt.Correct++
		}
		totals[a.Question.ModuleType] = mt
	}
	return totals
}

func (c *DetailedScoreCalculator) Calculate(answers []models.AnsweredQuestion) *models.DetailedScore {
	totals := FoldModuleTotals(answers)

	rawScores := make(map[models.ModuleType]int, len(totals))
	percentages := make(map[string]float64, len(totals)+1)
	percentiles := make(map[string]int, len(totals)+1)

	for module, mt := range totals {
		rawScores[module] = mt.Correct
		pct := percentage(mt.Correct, mt.Total)
		percentages[string(module)] = pct
		percentiles[string(module)] = c.converter.Percentile(pct)
	}

	overall := totals.Sum()
	overallPct := percentage(overall.Correct, overall.Total)
	percentages[models.OverallKey] = overallPct
	percentiles[models.OverallKey] = c.converter.Percentile(overallPct)

	english1 := totals.Get(models.ModuleEnglish1)
	english2 := totals.Get(models.ModuleEnglish2)
	readingScaled := c.converter.ScaledScore(english1.Correct, english1.Total, SectionReading)
	// english2 is scaled with the reading table too
	writingScaled := c.converter.ScaledScore(english2.Correct, english2.Total, SectionReading)
	ebrw := int(math.Round(float64(readingScaled+writingScaled) / 2))

	math1 := totals.Get(models.ModuleMath1)
	math2 := totals.Get(models.ModuleMath2)
	mathScore := c.converter.ScaledScore(math1.Correct+math2.Correct, math1.Total+math2.Total, SectionMath)

	return &models.DetailedScore{
		TotalScore:           ebrw + mathScore,
		EvidenceBasedReading: ebrw,
		MathScore:            mathScore,
		RawScores:            rawScores,
		Percentages:          percentages,
		Percentiles:          percentiles,
	}
}

// percentage returns part/whole*100, or 0 when whole is 0.
func percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
