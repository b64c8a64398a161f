package cli

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/dmitrijs2005/geoattend/internal/api"
	"github.com/dmitrijs2005/geoattend/internal/client/client"
	"github.com/dmitrijs2005/geoattend/internal/filex"
	"github.com/dmitrijs2005/geoattend/internal/server/auth"
)

var usage = map[string]string{
	"ping":            "ping",
	"login":           "login [username]",
	"logout":          "logout",
	"hash-password":   "hash-password",
	"clock-in":        "clock-in <employee> <morning|afternoon> <lat> <lon> [descriptor-file]",
	"clock-out":       "clock-out <employee> <morning|afternoon> <lat> <lon>",
	"status":          "status <employee> [YYYY-MM-DD]",
	"history":         "history <employee> [limit]",
	"attendance":      "attendance [limit]",
	"employees":       "employees",
	"employee":        "employee <employee>",
	"add-employee":    "add-employee <employee> <name> [email] [descriptor-file]",
	"enroll":          "enroll <employee> <descriptor-file>",
	"locations":       "locations",
	"add-location":    "add-location <name> <lat> <lon> [radius-meters]",
	"update-location": "update-location <id> <name> <lat> <lon> [radius-meters]",
	"activate":        "activate <location-id>",
	"deactivate":      "deactivate <location-id>",
	"export":          "export <YYYY-MM-DD> [download]",
}

var commandOrder = []string{
	"ping", "login", "logout", "hash-password",
	"clock-in", "clock-out", "status", "history",
	"attendance", "employees", "employee", "add-employee", "enroll",
	"locations", "add-location", "update-location", "activate", "deactivate", "export",
}

type usageError string

func (e usageError) Error() string { return "usage: " + usage[string(e)] }

var errUnknownCommand = errors.New("unknown command (type 'help')")

func (a *App) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.help()
		return nil
	case "exit", "quit":
		return errQuit
	case "ping":
		return a.ping(ctx)
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.client.SetToken("")
		a.loggedIn = false
		fmt.Fprintln(a.out, "Logged out")
		return nil
	case "hash-password":
		return a.hashPassword()
	case "clock-in":
		return a.clockIn(ctx, args)
	case "clock-out":
		return a.clockOut(ctx, args)
	case "status":
		return a.status(ctx, args)
	case "history":
		return a.history(ctx, args)
	case "attendance":
		return a.attendance(ctx, args)
	case "employees":
		return a.employees(ctx)
	case "employee":
		return a.employee(ctx, args)
	case "add-employee":
		return a.addEmployee(ctx, args)
	case "enroll":
		return a.enroll(ctx, args)
	case "locations":
		return a.locations(ctx)
	case "add-location":
		return a.addLocation(ctx, args)
	case "update-location":
		return a.updateLocation(ctx, args)
	case "activate":
		return a.setActive(ctx, cmd, args, true)
	case "deactivate":
		return a.setActive(ctx, cmd, args, false)
	case "export":
		return a.export(ctx, args)
	default:
		return fmt.Errorf("%q: %w", cmd, errUnknownCommand)
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Available commands:")
	for _, c := range commandOrder {
		fmt.Fprintf(a.out, "  %s\n", usage[c])
	}
	fmt.Fprintln(a.out, "  help | exit | quit")
}

func (a *App) ping(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		if username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
			return err
		}
	}

	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer wipe(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return err
	}
	a.loggedIn = true
	fmt.Fprintln(a.out, "Login successful")
	fmt.Fprintf(a.out, "export GEOATTEND_TOKEN=%s\n", token)
	return nil
}

func (a *App) hashPassword() error {
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer wipe(password)

	if len(password) == 0 {
		return errors.New("empty password")
	}

	hash, err := auth.HashPassword(string(password))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, hash)
	return nil
}

func (a *App) clockIn(ctx context.Context, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return usageError("clock-in")
	}
	loc, err := parseCoordinate(args[2], args[3])
	if err != nil {
		return err
	}

	req := &api.ClockInRequest{EmployeeID: args[0], SessionType: args[1], Location: loc}
	if len(args) == 5 {
		if req.Descriptor, err = loadDescriptor(args[4]); err != nil {
			return err
		}
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	res, err := a.client.ClockIn(ctx, req)
	if err != nil {
		return a.rejected(err)
	}
	a.printClock("Clocked in", res)
	return nil
}

func (a *App) clockOut(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return usageError("clock-out")
	}
	loc, err := parseCoordinate(args[2], args[3])
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	res, err := a.client.ClockOut(ctx, &api.ClockOutRequest{EmployeeID: args[0], SessionType: args[1], Location: loc})
	if err != nil {
		return a.rejected(err)
	}
	a.printClock("Clocked out", res)
	return nil
}

// rejected prints the measured values attached to a rejection before
// handing the error back.
func (a *App) rejected(err error) error {
	var rej *client.RejectedError
	if !errors.As(err, &rej) {
		return err
	}
	r := rej.Rejection
	if r.DistanceMeters != nil {
		fmt.Fprintf(a.out, "  distance to nearest location: %.1f m", *r.DistanceMeters)
		if r.NearestLocationID != nil {
			fmt.Fprintf(a.out, " (location %d)", *r.NearestLocationID)
		}
		fmt.Fprintln(a.out)
	}
	if r.BiometricDistance != nil {
		fmt.Fprintf(a.out, "  biometric distance: %.4f\n", *r.BiometricDistance)
	}
	return err
}

func (a *App) status(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("status")
	}
	day := ""
	if len(args) == 2 {
		day = args[1]
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	st, err := a.client.Status(ctx, args[0], day)
	if err != nil {
		return err
	}
	a.printStatus(st)
	return nil
}

func (a *App) history(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("history")
	}
	limit, err := optionalInt(args[1:])
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	list, err := a.client.History(ctx, args[0], limit)
	if err != nil {
		return err
	}
	a.printSessions(list)
	return nil
}

func (a *App) attendance(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("attendance")
	}
	limit, err := optionalInt(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	list, err := a.client.ListAttendance(ctx, limit)
	if err != nil {
		return err
	}
	a.printSessions(list)
	return nil
}

func (a *App) employees(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	list, err := a.client.Employees(ctx)
	if err != nil {
		return err
	}
	a.printEmployees(list)
	return nil
}

func (a *App) employee(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("employee")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	e, err := a.client.Employee(ctx, args[0])
	if err != nil {
		return err
	}
	a.printEmployees([]*api.Employee{e})
	return nil
}

func (a *App) addEmployee(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return usageError("add-employee")
	}
	req := &api.CreateEmployeeRequest{EmployeeID: args[0], Name: args[1]}
	if len(args) > 2 {
		req.Email = args[2]
	}
	if len(args) > 3 {
		d, err := loadDescriptor(args[3])
		if err != nil {
			return err
		}
		req.Descriptor = d
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	e, err := a.client.CreateEmployee(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created employee %s (enrolled: %t)\n", e.EmployeeID, e.Enrolled)
	return nil
}

func (a *App) enroll(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("enroll")
	}
	d, err := loadDescriptor(args[1])
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.EnrollDescriptor(ctx, args[0], d); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Enrolled %s (%d components)\n", args[0], len(d))
	return nil
}

func (a *App) locations(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	list, err := a.client.Locations(ctx)
	if err != nil {
		return err
	}
	a.printLocations(list)
	return nil
}

func (a *App) addLocation(ctx context.Context, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return usageError("add-location")
	}
	in, err := locationInput(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	l, err := a.client.CreateLocation(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created location %d %q (radius %.0f m)\n", l.ID, l.Name, l.RadiusMeters)
	return nil
}

func (a *App) updateLocation(ctx context.Context, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return usageError("update-location")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("location id %q: %w", args[0], err)
	}
	in, err := locationInput(args[1:])
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	l, err := a.client.UpdateLocation(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated location %d %q (radius %.0f m)\n", l.ID, l.Name, l.RadiusMeters)
	return nil
}

func (a *App) setActive(ctx context.Context, cmd string, args []string, active bool) error {
	if len(args) != 1 {
		return usageError(cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("location id %q: %w", args[0], err)
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.SetLocationActive(ctx, id, active); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Location %d active: %t\n", id, active)
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "download") {
		return usageError("export")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	res, err := a.client.ExportDay(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported %d sessions to %s\n", res.Sessions, res.Key)
	fmt.Fprintf(a.out, "URL: %s\n", res.URL)

	if len(args) < 2 {
		return nil
	}

	data, err := a.download(ctx, res.URL)
	if err != nil {
		return err
	}
	p, err := filex.WriteInDir(a.config.ReportsDir, path.Base(res.Key), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s\n", p)
	return nil
}

func parseCoordinate(lat, lon string) (*api.Coordinate, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, fmt.Errorf("latitude %q: %w", lat, err)
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, fmt.Errorf("longitude %q: %w", lon, err)
	}
	return &api.Coordinate{Latitude: la, Longitude: lo}, nil
}

func locationInput(args []string) (api.LocationInput, error) {
	c, err := parseCoordinate(args[1], args[2])
	if err != nil {
		return api.LocationInput{}, err
	}
	in := api.LocationInput{Name: args[0], Latitude: c.Latitude, Longitude: c.Longitude}
	if len(args) > 3 {
		if in.RadiusMeters, err = strconv.ParseFloat(args[3], 64); err != nil {
			return api.LocationInput{}, fmt.Errorf("radius %q: %w", args[3], err)
		}
	}
	return in, nil
}

func optionalInt(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("limit %q: %w", args[0], err)
	}
	return n, nil
}
