// Package catalog holds what the bakery sells and where it hands it over:
// products with a unit price in minor currency units, and pickup locations.
package catalog
