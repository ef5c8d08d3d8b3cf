package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/snsclone/internal/client/validation"
	"github.com/dmitrijs2005/snsclone/internal/client/workflows"
)

// printReport shows the failed steps of a workflow. Validation problems are
// listed one per line, the way a form shows them under its fields.
func (a *App) printReport(r workflows.Report) {
	err := r.Err()
	if err == nil {
		return
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fmt.Fprintln(a.out, " -", fe.Message)
		}
		return
	}

	for _, s := range r.Steps {
		if s.Err != nil {
			fmt.Fprintf(a.out, "%s failed: %v\n", s.Name, s.Err)
		}
	}
}
