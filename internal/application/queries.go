package application

import "github.com/bnema/mllib-cli/internal/domain"

// CategoryView is one category with its libraries and summed size estimate.
type CategoryView struct {
	Category  domain.Category
	Libraries []domain.Library
	TotalMB   float64
}

// Overview is the whole catalog grouped by category.
type Overview struct {
	Categories []CategoryView
}

func (o Overview) TotalMB() float64 {
	var total float64
	for _, view := range o.Categories {
		total += view.TotalMB
	}

	return total
}

func (o Overview) LibraryCount() int {
	var count int
	for _, view := range o.Categories {
		count += len(view.Libraries)
	}

	return count
}

// InstallReport is the outcome of one install attempt. JournalErr carries a
// journal write failure without masking the install outcome itself.
type InstallReport struct {
	Record     domain.InstallRecord
	JournalErr error
}

func (r InstallReport) Succeeded() bool {
	return r.Record.Outcome == domain.InstallSucceeded
}
