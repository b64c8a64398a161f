package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/api"
)

const clockLayout = "15:04:05"

func clock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(clockLayout)
}

func (a *App) printClock(verb string, res *api.ClockResponse) {
	s := res.Session
	v := res.Verification
	fmt.Fprintf(a.out, "%s: %s %s session %s\n", verb, s.EmployeeID, s.SessionType, s.Day)
	fmt.Fprintf(a.out, "  geofence: %.1f m", v.DistanceMeters)
	if v.LocationID != nil {
		fmt.Fprintf(a.out, " from location %d", *v.LocationID)
	}
	fmt.Fprintln(a.out)
	switch {
	case !v.BiometricPerformed:
		fmt.Fprintln(a.out, "  biometric: not performed")
	case v.BiometricDistance != nil:
		fmt.Fprintf(a.out, "  biometric: passed (distance %.4f)\n", *v.BiometricDistance)
	default:
		fmt.Fprintln(a.out, "  biometric: passed")
	}
}

func (a *App) printStatus(st *api.StatusResponse) {
	fmt.Fprintf(a.out, "%s (%s) on %s\n", st.EmployeeName, st.EmployeeID, st.Day)

	names := make([]string, 0, len(st.Sessions))
	for name := range st.Sessions {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tCLOCKED IN\tCLOCKED OUT")
	for _, name := range names {
		ss := st.Sessions[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, clock(ss.ClockInTime), clock(ss.ClockOutTime))
	}
	tw.Flush()
}

func (a *App) printSessions(list []*api.Session) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No sessions")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tEMPLOYEE\tSESSION\tIN\tOUT\tBIOMETRIC")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
			s.Day, s.EmployeeID, s.SessionType, clock(s.ClockInTime), clock(s.ClockOutTime), s.BiometricChecked)
	}
	tw.Flush()
}

func (a *App) printEmployees(list []*api.Employee) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No employees")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tENROLLED")
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", e.EmployeeID, e.Name, e.Email, e.Enrolled)
	}
	tw.Flush()
}

func (a *App) printLocations(list []*api.Location) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No locations")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLAT\tLON\tRADIUS\tACTIVE")
	for _, l := range list {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\t%.6f\t%.0f\t%t\n", l.ID, l.Name, l.Latitude, l.Longitude, l.RadiusMeters, l.Active)
	}
	tw.Flush()
}
