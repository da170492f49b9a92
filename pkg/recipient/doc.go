// Package recipient loads survey recipients from CSV files and PostgreSQL.
//
// CSV files carry a header row with customer_id, name, email and
// install_date columns in any order:
//
//	customer_id,name,email,install_date
//	CUST-12345,John Doe,john@example.com,2024-01-15
//
// The Repository selects customers whose installation is at least N days old
// and who have not been surveyed, and flags them once their survey was sent.
// Its schema lives in the migrations subpackage.
package recipient
