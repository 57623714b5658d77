// Package users serves the /users collection.
//
// A User carries a nested address with geo coordinates and a company. They are
// flattened into prefixed columns of the users table (address_city,
// address_geo_lat, company_name and so on) and kept nested in JSON.
package users
