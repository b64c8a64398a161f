// Package common contains shared constants and sentinel errors used across
// geoattend components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the admin
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// DayLayout is the textual form of a calendar day.
const DayLayout = "2006-01-02"
