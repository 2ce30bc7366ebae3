// Package models defines the core domain models for the service charge calculator.
//
// # Input Models
//
// The following models describe what the user enters:
//   - BillData: The whole bill for one building and billing period
//   - ServiceCategory: One shared expense line item
//   - GarageSpace: Optional building-wide parking fees
//
// # Output Models
//
//   - BillSummary: Result of apportioning a bill across flats
//   - CategoryTotals: Per-category share of one flat, in input order
//
// # Design Principles
//
// 1. **Read-only input**: nothing in the calculator mutates BillData
// 2. **Exact money**: amounts are decimal.Decimal, never float64
// 3. **Compatible JSON**: field names match the files exported by the web app,
// so a bill saved there loads here unchanged
// 4. **IDs, not pointers**: categories are referenced by their string ID
package models
