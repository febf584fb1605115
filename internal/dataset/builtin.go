// internal/dataset/builtin.go
package dataset

import "github.com/mwiater/allocview/internal/matrix"

const (
	// Leximin is the variant key of the leximin selection algorithm.
	Leximin = "leximin"
	// Diversimax is the variant key of the diversimax selection algorithm.
	Diversimax = "diversimax"

	// DefaultIndex selects "Age × Gender - Kfar Saba" in the builtin catalog.
	DefaultIndex = 3
)

// DefaultVariants is the render order used when no variants are configured.
var DefaultVariants = []string{Diversimax, Leximin}

func quota(labels []string, ranges ...Range) QuotaTable {
	return QuotaTable{Labels: labels, Ranges: ranges}
}

func pair(variantLeximin, variantDiversimax matrix.Matrix) map[string]matrix.Matrix {
	return map[string]matrix.Matrix{Leximin: variantLeximin, Diversimax: variantDiversimax}
}

func scores(leximin, diversimax float64) map[string]float64 {
	return map[string]float64{Leximin: leximin, Diversimax: diversimax}
}

// Builtin returns the demonstration catalog comparing leximin and diversimax
// panels drawn in Raanana and Kfar Saba. Each call returns fresh values.
func Builtin() []Dataset {
	raananaNeighborhoods := quota([]string{"North East", "North West", "South"}, Range{18, 22}, Range{15, 22}, Range{19, 22})
	raananaGender := quota([]string{"Male", "Female"}, Range{28, 32}, Range{28, 32})

	return []Dataset{
		{
			Name:    "Neighborhood × Gender - Raanana",
			Comment: "Diversimax prefers completely equal intersection sizes, unbiased by the distribution in the pool",
			Axes: Axes{
				Rows:     []string{"South", "North East", "North West"},
				Cols:     []string{"Female", "Male"},
				RowsName: "neighborhood",
				ColsName: "gender",
			},
			Variants: pair(
				matrix.Matrix{{14, 8}, {9, 9}, {9, 11}},
				matrix.Matrix{{10, 10}, {10, 10}, {10, 10}},
			),
			Dispersion: scores(0.1, 0),
			Quotas: map[string]QuotaTable{
				"neighborhood": raananaNeighborhoods,
				"gender":       raananaGender,
			},
		},
		{
			Name: "Neighborhood × Religiousness - Raanana",
			Axes: Axes{
				Rows:     []string{"South", "North East", "North West"},
				Cols:     []string{"Religious", "Secular", "Traditional"},
				RowsName: "neighborhood",
				ColsName: "religiousness",
			},
			Variants: pair(
				matrix.Matrix{{5, 16, 1}, {6, 10, 2}, {2, 13, 5}},
				matrix.Matrix{{5, 10, 5}, {5, 12, 3}, {3, 12, 5}},
			),
			Dispersion: scores(0.41, 0.27),
			Quotas: map[string]QuotaTable{
				"religiousness": quota([]string{"Secular", "Traditional", "Religious"}, Range{34, 41}, Range{8, 13}, Range{8, 13}),
				"neighborhood":  raananaNeighborhoods,
			},
		},
		{
			Name: "Education × Gender - Raanana",
			Axes: Axes{
				Rows:     []string{"High School Diploma", "BA", "MA+", "Non-Academic Diploma"},
				Cols:     []string{"Female", "Male"},
				RowsName: "education",
				ColsName: "gender",
			},
			Variants: pair(
				matrix.Matrix{{0, 3}, {15, 10}, {14, 10}, {3, 5}},
				matrix.Matrix{{4, 5}, {14, 10}, {9, 10}, {3, 5}},
			),
			Dispersion: scores(0.39, 0.26),
			Quotas: map[string]QuotaTable{
				"gender":    raananaGender,
				"education": quota([]string{"Non-Academic Diploma", "MA+", "BA", "High School Diploma"}, Range{6, 8}, Range{12, 24}, Range{21, 27}, Range{3, 9}),
			},
		},
		{
			Name:    "Age × Gender - Kfar Saba",
			Comment: "Diversimax prefers higher representation of underrepresented groups, other algorithms may stick to the lower end of the quota range",
			Axes: Axes{
				Rows:     []string{"22-29", "30-39", "40-49", "50-59", "60-69", "70+"},
				Cols:     []string{"Female", "Male"},
				RowsName: "age",
				ColsName: "gender",
			},
			Variants: pair(
				matrix.Matrix{{1, 2}, {7, 0}, {8, 7}, {2, 5}, {5, 7}, {11, 5}},
				matrix.Matrix{{4, 3}, {4, 4}, {6, 5}, {5, 6}, {6, 6}, {5, 6}},
			),
			Dispersion: scores(0.35, 0.11),
			Quotas: map[string]QuotaTable{
				"age":    quota([]string{"22-29", "30-39", "40-49", "50-59", "60-69", "70+"}, Range{3, 7}, Range{7, 9}, Range{10, 15}, Range{7, 13}, Range{8, 12}, Range{11, 16}),
				"gender": raananaGender,
			},
		},
		{
			Name: "Religiousness × Gender - Kfar Saba",
			Axes: Axes{
				Rows:     []string{"Religious", "Secular", "Traditional"},
				Cols:     []string{"Female", "Male"},
				RowsName: "religiousness",
				ColsName: "gender",
			},
			Variants: pair(
				matrix.Matrix{{2, 1}, {26, 18}, {6, 7}},
				matrix.Matrix{{4, 4}, {18, 19}, {8, 7}},
			),
			Dispersion: scores(0.43, 0.33),
			Quotas: map[string]QuotaTable{
				"gender":        quota([]string{"Male", "Female"}, Range{26, 34}, Range{26, 34}),
				"religiousness": quota([]string{"Secular", "Traditional", "Religious"}, Range{36, 44}, Range{10, 16}, Range{3, 8}),
			},
		},
		{
			Name:    "Neighborhood × Education - Kfar Saba (narrow quota ranges)",
			Comment: "Even when the quota ranges are narrow (each category totals to the same value in both algorithms), Diversimax achieves a more balanced distribution",
			Axes: Axes{
				Rows:     []string{"East", "West", "Center-South", "Center-North", "New 60", "New 80"},
				Cols:     []string{"9-12", "13-15", "16+"},
				RowsName: "neighborhood",
				ColsName: "education",
			},
			Variants: pair(
				matrix.Matrix{{2, 2, 7}, {2, 2, 2}, {4, 11, 0}, {5, 4, 9}, {3, 0, 2}, {2, 1, 2}},
				matrix.Matrix{{2, 4, 5}, {2, 2, 2}, {5, 6, 4}, {5, 4, 9}, {2, 2, 1}, {2, 2, 1}},
			),
			Dispersion: scores(0.43, 0.31),
			Quotas: map[string]QuotaTable{
				"education":    quota([]string{"9-12", "13-15", "16+"}, Range{18, 18}, Range{20, 20}, Range{22, 22}),
				"neighborhood": quota([]string{"East", "West", "Center-South", "Center-North", "New 60", "New 80"}, Range{9, 9}, Range{6, 6}, Range{15, 15}, Range{18, 18}, Range{5, 5}, Range{5, 5}),
			},
		},
		{
			Name:    "Education - Kfar Saba",
			Comment: "Even when looking at a single dimension, Diversimax tends to a more balanced distribution",
			Axes: Axes{
				Rows:     []string{"12-9", "15-13", "16+"},
				Cols:     []string{"Count"},
				RowsName: "education",
				ColsName: "count",
			},
			Variants: pair(
				matrix.Matrix{{15}, {21}, {24}},
				matrix.Matrix{{18}, {22}, {20}},
			),
			Dispersion: scores(0.1, 0.04),
			Quotas: map[string]QuotaTable{
				"education": quota([]string{"12-9", "15-13", "16+"}, Range{15, 25}, Range{20, 24}, Range{16, 24}),
			},
		},
	}
}
