// Package kernel provides the value objects shared by every bakery aggregate:
//   - UUID: entity identifier
//   - Date: a calendar day without a time zone (due dates, generation day)
//   - TimeOfDay: an hour and minute within a day (due times)
//
// All three are immutable; the zero value of each is invalid and is rejected
// by its Validate method.
package kernel
