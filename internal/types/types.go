// Package types implements calendar value types for Sitebook.
//
// All calendar values are normalized to 00:00 UTC of their calendar date. The
// calendar date itself is always extracted in the location of the time value
// passed in, so records entered in different time zones land on the day the
// user saw when entering them.
package types
