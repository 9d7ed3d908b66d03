package stats

type Summary struct {
	Shelters  int
	Pets      PetCounts
	Adoptions int
	Care      CareTotals
}

type PetCounts struct {
	Total     int
	Active    int
	Inactive  int
	BySpecies map[string]int
}

type CareTotals struct {
	Events int
	Cost   float64
}

type YearCount struct {
	Year  int
	Total int
}

// MonthCount: Month con formato YYYY-MM.
type MonthCount struct {
	Month string
	Total int
}
