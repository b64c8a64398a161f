// Package models defines server-side data models persisted in the database
// and the transient values exchanged between services and transports.
package models
