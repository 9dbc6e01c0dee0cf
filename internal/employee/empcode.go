package employee

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	employeeerrors "github.com/mrxguptaa/payroll/internal/employee/errors"
)

// Each organization owns fixed numeric code bands per employee type. Staff and
// labor never share a band, and Jai Durga Cottex carries a textual prefix.
type codeBand struct {
	prefix     string
	staffStart int
	staffEnd   int
	laborStart int
	laborEnd   int
}

var orgCodeBands = map[string]codeBand{
	"Mittal Spinners":  {prefix: "", staffStart: 1, staffEnd: 100, laborStart: 101, laborEnd: 300},
	"HRM Spinners":     {prefix: "", staffStart: 301, staffEnd: 400, laborStart: 401, laborEnd: 600},
	"Jai Durga Cottex": {prefix: "JDC-", staffStart: 1, staffEnd: 100, laborStart: 101, laborEnd: 200},
}

// KnownOrg reports whether the organization has a configured code band.
func KnownOrg(org string) bool {
	_, ok := orgCodeBands[org]
	return ok
}

// Orgs lists the configured organizations, sorted for stable output.
func Orgs() []string {
	orgs := make([]string, 0, len(orgCodeBands))
	for org := range orgCodeBands {
		orgs = append(orgs, org)
	}
	sort.Strings(orgs)
	return orgs
}

// CodeRecord is the slice of an employee row the allocator needs.
type CodeRecord struct {
	EmpCode   string
	JoinDate  time.Time
	LeaveDate *time.Time
}

var trailingDigits = regexp.MustCompile(`\d+$`)

func codeNumber(empCode string) (int, bool) {
	m := trailingDigits.FindString(empCode)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AllocateEmpCode picks a code for a new hire within the org/type band.
// Codes of employees who left before the new hire joined are reused first
// (smallest wins) as long as no other tenure overlapping the join date holds
// the same number; otherwise the first untaken number in the band is issued.
func AllocateEmpCode(org, empType string, joinDate time.Time, existing []CodeRecord) (string, error) {
	band, ok := orgCodeBands[org]
	if !ok {
		return "", employeeerrors.ErrUnknownOrg
	}

	start, end := band.staffStart, band.staffEnd
	if empType == EmpTypeLabor {
		start, end = band.laborStart, band.laborEnd
	}

	join := DateOnly(joinDate)

	reusable := make([]int, 0)
	overlapping := make(map[int]bool)
	taken := make(map[int]bool)

	for _, rec := range existing {
		n, ok := codeNumber(rec.EmpCode)
		if !ok {
			continue
		}

		if rec.LeaveDate != nil && DateOnly(*rec.LeaveDate).Before(join) {
			if n >= start && n <= end {
				reusable = append(reusable, n)
			}
		}

		// Active tenures, and tenures spanning the join date, block their code
		if rec.LeaveDate == nil ||
			(!DateOnly(rec.JoinDate).After(join) && !DateOnly(*rec.LeaveDate).Before(join)) {
			overlapping[n] = true
		}

		if n >= start && n <= end {
			taken[n] = true
		}
	}

	sort.Ints(reusable)
	for _, n := range reusable {
		if !overlapping[n] {
			return fmt.Sprintf("%s%d", band.prefix, n), nil
		}
	}

	for n := start; n <= end; n++ {
		if !taken[n] {
			return fmt.Sprintf("%s%d", band.prefix, n), nil
		}
	}

	return "", employeeerrors.ErrNoAvailableCode
}
