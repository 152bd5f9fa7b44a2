package analytics

// Section selects the conversion table used for a scaled score.
type Section string

const (
	SectionReading Section = "reading"
	SectionMath    Section = "math"
)

const (
	MinSectionScore = 200
	MaxSectionScore = 800
)

// defaultScaleTable is a simplified, non-decreasing raw-percentage to scaled
// score curve. It is not the official SAT equating table.
var defaultScaleTable = []int{
	200, 210, 220, 230, 240, 250, 270, 280,
	290, 300, 310, 320, 330, 340, 350, 360,
	370, 390, 400, 410, 420, 430, 440, 450,
	460, 470, 480, 490, 510, 520, 530, 540,
	550, 560, 570, 580, 590, 600, 610, 630,
	640, 650, 660, 670, 680, 690, 700, 710,
	720, 730, 750, 760, 770, 780, 790, 800,
}

type percentileBand struct {
	minPercentage float64
	percentile    int
}

var percentileBands = []percentileBand{
	{95, 99},
	{90, 95},
	{85, 90},
	{80, 85},
	{75, 75},
	{70, 65},
	{65, 55},
	{60, 45},
	{55, 35},
	{50, 25},
	{40, 15},
	{30, 10},
}

const floorPercentile = 5

// ScoreConverter maps raw results to scaled section scores and percentiles.
// Reading and math currently share one table.
type ScoreConverter struct {
	tables map[Section][]int
}

func NewScoreConverter() *ScoreConverter {
	return &ScoreConverter{
		tables: map[Section][]int{
			SectionReading: defaultScaleTable,
			SectionMath:    defaultScaleTable,
		},
	}
}

// ScaledScore converts correct out of total into a 200-800 score. A section
// with no questions scores the floor.
func (c *ScoreConverter) ScaledScore(correct, total int, section Section) int {
	if total <= 0 {
		return MinSectionScore
	}

	table, ok := c.tables[section]
	if !ok {
		table = defaultScaleTable
	}

	// floor(correct/total * (len-1)) in integer arithmetic
	last := len(table) - 1
	index := correct * last / total
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}
	return table[index]
}

// Percentile estimates a percentile rank from a 0-100 percentage.
func (c *ScoreConverter) Percentile(percentage float64) int {
	for _, band := range percentileBands {
		if percentage >= band.minPercentage {
			return band.percentile
		}
	}
	return floorPercentile
}
