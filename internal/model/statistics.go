package model

// Statistics is a read-only snapshot of a book's grades at computation time.
type Statistics struct {
	Average float64 // rounded to one decimal place
	High    float64
	Low     float64
}
