package importer

import (
	"fmt"

	"github.com/tilikirja-dev/tilikirja/internal/analyze"
	"github.com/tilikirja-dev/tilikirja/internal/model"
)

// ValidationError describes a column-mapping precondition violation.
type ValidationError struct {
	Mapping     model.Mapping
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("mapping %s: %s", e.Mapping, e.Description)
}

// ValidateMappings checks the preconditions an import needs from the
// column mapping: exactly one date column, and at least one column the
// amount can come from.
func ValidateMappings(cols []analyze.Column) []ValidationError {
	var errs []ValidationError

	switch n := analyze.CountMapped(cols, model.MapDate); {
	case n == 0:
		errs = append(errs, ValidationError{model.MapDate, "no column mapped to the date field"})
	case n > 1:
		errs = append(errs, ValidationError{model.MapDate, fmt.Sprintf("%d columns mapped to the date field, expected one", n)})
	}

	hasAmount := analyze.MappedIndex(cols, model.MapDebit) >= 0 ||
		analyze.MappedIndex(cols, model.MapCredit) >= 0 ||
		analyze.MappedIndex(cols, model.MapAmount) >= 0
	if !hasAmount {
		errs = append(errs, ValidationError{model.MapAmount, "no column mapped to debit, credit or amount"})
	}

	return errs
}
