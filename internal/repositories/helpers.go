package repositories

import (
	"fmt"
	"sort"
	"strings"

	"sponsorcrm/internal/models"

	"github.com/lib/pq"
)

// buildSet renders a SET clause from a column→value map with stable ordering,
// numbering placeholders from startIdx.
func buildSet(fields map[string]interface{}, startIdx int) (string, []interface{}) {
	cols := make([]string, 0, len(fields))
	for c := range fields {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	parts := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for i, c := range cols {
		parts = append(parts, fmt.Sprintf("%s=$%d", c, startIdx+i))
		v := fields[c]
		if ss, ok := v.([]string); ok {
			v = pq.Array(ss)
		}
		args = append(args, v)
	}
	return strings.Join(parts, ", "), args
}

// terminalStages returns the terminal stage set as a pq array parameter.
func terminalStages() interface{} {
	out := make([]string, len(models.TerminalStages))
	for i, s := range models.TerminalStages {
		out[i] = string(s)
	}
	return pq.Array(out)
}
