// Package customer provides the Customer aggregate: an email-identified
// party holding ordered references to the orders it has placed. Customers
// never own orders; the order ledger does.
package customer
