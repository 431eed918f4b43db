package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/idlab-discover/uom-cli/internal/apperr"
)

// ConvertFunc performs a conversion for the form; units are given by abbreviation.
type ConvertFunc func(kind string, value float64, from, to string) (ConversionView, error)

// FormAnswers holds what the user entered in the conversion form.
type FormAnswers struct {
	Kind  string
	From  string
	To    string
	Value string
}

// RunConversionForm asks for a kind, then for the source unit, target unit and
// magnitude, and runs convert on the answers.
func RunConversionForm(tables []KindTable, convert ConvertFunc) (ConversionView, error) {
	var ans FormAnswers

	kinds := make([]huh.Option[string], 0, len(tables))
	for _, t := range tables {
		kinds = append(kinds, huh.NewOption(t.Kind, t.Kind))
	}
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Quantity kind").
			Options(kinds...).
			Value(&ans.Kind),
	)).Run()
	if err != nil {
		return ConversionView{}, formError(err)
	}

	table, ok := findTable(tables, ans.Kind)
	if !ok {
		return ConversionView{}, apperr.Userf("unknown kind %q", ans.Kind)
	}
	units := UnitOptions(table)

	err = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("From").
			Options(units...).
			Value(&ans.From),
		huh.NewSelect[string]().
			Title("To").
			Options(units...).
			Value(&ans.To),
		huh.NewInput().
			Title("Magnitude").
			Placeholder("e.g. 12.5").
			Value(&ans.Value).
			Validate(ValidateMagnitude),
	)).Run()
	if err != nil {
		return ConversionView{}, formError(err)
	}

	v, _ := strconv.ParseFloat(strings.TrimSpace(ans.Value), 64)
	return convert(ans.Kind, v, ans.From, ans.To)
}

// UnitOptions builds select options for a kind, labelled with each unit's NameAndAbbr
// and keyed by abbreviation.
func UnitOptions(t KindTable) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(t.Units))
	for _, u := range t.Units {
		opts = append(opts, huh.NewOption(u.NameAndAbbr, u.Abbr))
	}
	return opts
}

// ValidateMagnitude accepts anything strconv.ParseFloat does.
func ValidateMagnitude(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a magnitude is required")
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

func findTable(tables []KindTable, kind string) (KindTable, bool) {
	for _, t := range tables {
		if t.Kind == kind {
			return t, true
		}
	}
	return KindTable{}, false
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return apperr.ErrCancelled
	}
	return fmt.Errorf("conversion form: %w", err)
}
