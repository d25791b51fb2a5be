package attributes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hashicorp/go-multierror"

	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/service/countries"
	"github.com/safing/taxglobe/service/datasets"
	"github.com/safing/taxglobe/service/geometry"
)

// ErrIncomplete is returned in strict mode when rows could not be joined.
var ErrIncomplete = errors.New("incomplete join")

// Options configures the join.
type Options struct {
	CodeColumn string
	NameColumn string
	// Strict fails the join on unmatched rows or unknown values instead of
	// logging a warning.
	Strict bool
}

// DefaultOptions returns the column names of the tax globe workbook.
func DefaultOptions() Options {
	return Options{
		CodeColumn: "ISO",
		NameColumn: "Jurisdiction",
	}
}

// Row is a single table row as seen by the join.
type Row struct {
	// Line is the 1-based spreadsheet line, counting the header.
	Line         int
	Code         string
	Jurisdiction string
	Value        string
}

// Assignment is the dataset classification of one country.
type Assignment struct {
	Code     string
	Category *datasets.Category
	// Value is the raw cell value, empty if the country has no data.
	Value string
	Color color.RGBA
}

// Result holds the joined classification of every country.
type Result struct {
	Dataset     *datasets.Dataset
	Assignments map[string]*Assignment
	Rows        int
	Unmatched   []Row
	// Unknown aggregates values without a category.
	Unknown error
}

// Perfect returns whether every row matched a country and a category.
func (r *Result) Perfect() bool {
	return len(r.Unmatched) == 0 && r.Unknown == nil
}

// Get returns the assignment of a country. Countries not in the collection
// get the none category.
func (r *Result) Get(code string) *Assignment {
	if a, ok := r.Assignments[code]; ok {
		return a
	}
	return r.noneAssignment(code)
}

func (r *Result) noneAssignment(code string) *Assignment {
	return &Assignment{
		Code:     code,
		Category: r.Dataset.None(),
		Color:    r.Dataset.DefaultRGBA(),
	}
}

// Join attaches the dataset classification in table to every country of
// the collection.
func Join(geo *geometry.Collection, ds *datasets.Dataset, table *Table, opts Options) (*Result, error) {
	codeCol, err := table.Column(opts.CodeColumn)
	if err != nil {
		return nil, err
	}
	valueCol, err := table.Column(ds.Column)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", ds.ID, err)
	}
	nameCol, err := table.Column(opts.NameColumn)
	if err != nil {
		log.Debugf("attributes: %s, using codes as names", err)
		nameCol = -1
	}

	result := &Result{
		Dataset:     ds,
		Assignments: make(map[string]*Assignment, geo.Len()),
	}
	for _, code := range geo.Codes() {
		result.Assignments[code] = result.noneAssignment(code)
	}

	var unknown *multierror.Error
	for i := range table.Rows {
		row := Row{
			Line:         i + 2,
			Code:         countries.NormalizeCode(table.Cell(i, codeCol)),
			Jurisdiction: table.Cell(i, nameCol),
			Value:        table.Cell(i, valueCol),
		}
		if row.Code == "" && row.Value == "" && row.Jurisdiction == "" {
			continue
		}
		if row.Jurisdiction == "" {
			row.Jurisdiction = row.Code
		}
		result.Rows++

		a, ok := result.Assignments[row.Code]
		if !ok {
			log.Warningf("attributes: cannot find %s (%s)", row.Jurisdiction, row.Code)
			result.Unmatched = append(result.Unmatched, row)
			continue
		}

		if datasets.NormalizeValue(row.Value) == "" {
			log.Tracef("attributes: found %s (%s): no data on %s", row.Jurisdiction, row.Code, ds.ID)
			continue
		}

		cat, err := ds.Category(row.Value)
		if err != nil {
			log.Warningf("attributes: %s (%s) on line %d: %s", row.Jurisdiction, row.Code, row.Line, err)
			unknown = multierror.Append(unknown, fmt.Errorf("line %d (%s): %w", row.Line, row.Code, err))
			continue
		}

		a.Category = cat
		a.Value = row.Value
		a.Color = cat.RGBA()
		log.Tracef("attributes: found %s (%s): %s", row.Jurisdiction, row.Code, row.Value)
	}
	result.Unknown = unknown.ErrorOrNil()

	if result.Perfect() {
		log.Infof("attributes: successfully found all %d jurisdictions", result.Rows)
		return result, nil
	}

	log.Warningf("attributes: %d of %d rows could not be joined", len(result.Unmatched)+unknownCount(unknown), result.Rows)
	if opts.Strict {
		var errs *multierror.Error
		for _, row := range result.Unmatched {
			errs = multierror.Append(errs, fmt.Errorf("line %d: cannot find %s (%s)", row.Line, row.Jurisdiction, row.Code))
		}
		if unknown != nil {
			errs = multierror.Append(errs, unknown.Errors...)
		}
		return result, fmt.Errorf("%w: %w", ErrIncomplete, errs)
	}
	return result, nil
}

func unknownCount(errs *multierror.Error) int {
	if errs == nil {
		return 0
	}
	return len(errs.Errors)
}
