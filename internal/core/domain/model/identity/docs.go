// Package identity holds the staff users of the bakery: bakers, baristas and
// admins. Users author order history entries; authentication itself lives
// outside this module.
package identity
