package book_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"GradeBook/internal/book"
	"GradeBook/internal/calculator"
	"GradeBook/internal/model"
)

func bookWith(name string, grades ...float64) *book.Book {
	b := book.New(name)
	for _, g := range grades {
		b.AddGrade(g)
	}
	return b
}

var _ = Describe("Book", func() {
	Describe("New", func() {
		It("Keeps the given name and starts empty", func() {
			b := book.New("Paul School")
			Expect(b.Name()).To(Equal("Paul School"))
			Expect(b.Count()).To(Equal(0))
			Expect(b.Grades()).To(BeEmpty())
		})

		It("Accepts an empty name", func() {
			Expect(book.New("").Name()).To(Equal(""))
		})
	})

	Describe("AddGrade", func() {
		It("Preserves insertion order and duplicates", func() {
			b := bookWith("order", 3, 1, 2, 1)
			Expect(b.Grades()).To(Equal([]float64{3, 1, 2, 1}))
			Expect(b.Count()).To(Equal(4))
		})

		It("Never removes or reorders earlier grades", func() {
			b := book.New("append")
			var seen []float64
			for _, g := range []float64{45.9, -10, 1e9, 0, 45.9} {
				b.AddGrade(g)
				seen = append(seen, g)
				Expect(b.Grades()).To(Equal(seen))
			}
		})

		It("Accepts values outside any grading scale", func() {
			b := bookWith("unbounded", -50, 1e12)
			Expect(b.Grades()).To(Equal([]float64{-50, 1e12}))
		})
	})

	Describe("Grades", func() {
		It("Returns a copy the caller cannot use to mutate the book", func() {
			b := bookWith("copy", 1, 2)
			grades := b.Grades()
			grades[0] = 99
			Expect(b.Grades()).To(Equal([]float64{1, 2}))
		})
	})

	Describe("GetStatistics", func() {
		DescribeTable("computing statistics over added grades",
			func(grades []float64, expectation model.Statistics) {
				stats, err := bookWith("table", grades...).GetStatistics()
				Expect(err).NotTo(HaveOccurred())
				Expect(stats).To(Equal(expectation))
			},
			Entry("demo grades", []float64{45.9, 25.9, 105.9}, model.Statistics{Average: 59.2, High: 105.9, Low: 25.9}),
			Entry("mixed signs", []float64{10.5, 5.5, 5.4, 200, 0.2, -50}, model.Statistics{Average: 28.6, High: 200, Low: -50}),
			Entry("single grade", []float64{100}, model.Statistics{Average: 100, High: 100, Low: 100}),
		)

		It("Does not change the grades", func() {
			b := bookWith("stable", 105.9, 25.9, 45.9)
			_, err := b.GetStatistics()
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Grades()).To(Equal([]float64{105.9, 25.9, 45.9}))
		})

		It("Reflects grades added after a previous snapshot", func() {
			b := bookWith("grow", 10)
			first, err := b.GetStatistics()
			Expect(err).NotTo(HaveOccurred())
			b.AddGrade(20)
			second, err := b.GetStatistics()
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(model.Statistics{Average: 10, High: 10, Low: 10}))
			Expect(second).To(Equal(model.Statistics{Average: 15, High: 20, Low: 10}))
		})

		It("Returns the empty collection error for a book without grades", func() {
			stats, err := book.New("Empty School").GetStatistics()
			Expect(err).To(MatchError(calculator.ErrEmptyCollection))
			Expect(err.Error()).To(ContainSubstring(`"Empty School"`))
			Expect(stats).To(Equal(model.Statistics{}))
		})
	})
})
