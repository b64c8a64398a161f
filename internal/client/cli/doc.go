// Package cli implements the geoattend command-line client.
//
// The client runs a single command given on the command line, or an
// interactive loop when none is given. Kiosk commands (clock-in, clock-out,
// status, history) need no credentials; management commands require an
// admin access token obtained with login or supplied through -k or
// GEOATTEND_TOKEN.
package cli
