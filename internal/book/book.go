package book

import (
	"fmt"

	"GradeBook/internal/calculator"
	"GradeBook/internal/model"
)

// Book is a named, ordered collection of grades.
// It is not safe for concurrent use; callers sharing a Book must serialize access.
type Book struct {
	name   string
	grades []float64
}

// New creates an empty Book. The name is not validated and cannot be changed later.
func New(name string) *Book {
	return &Book{name: name, grades: make([]float64, 0)}
}

func (b *Book) Name() string { return b.name }

func (b *Book) Count() int { return len(b.grades) }

// AddGrade appends a grade. Any value is accepted, including negatives.
func (b *Book) AddGrade(grade float64) {
	b.grades = append(b.grades, grade)
}

// Grades returns a copy of the grades in insertion order.
func (b *Book) Grades() []float64 {
	out := make([]float64, len(b.grades))
	copy(out, b.grades)
	return out
}

// GetStatistics computes a snapshot over the current grades.
// It returns an error wrapping calculator.ErrEmptyCollection when the book has no grades.
func (b *Book) GetStatistics() (model.Statistics, error) {
	stats, err := calculator.CalculateStatistics(b.grades)
	if err != nil {
		return model.Statistics{}, fmt.Errorf("statistics for %q: %w", b.name, err)
	}
	return stats, nil
}
