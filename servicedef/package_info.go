// Package servicedef describes the REST contract between the order-request page and its backend:
// route paths, enumerations, response bodies and the lead-submission payload.
package servicedef
