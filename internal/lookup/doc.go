// Package lookup selects an extraction mode for a request, fetches the page,
// and turns the extracted lists into a result table.
//
// Every recoverable condition (an unreachable page, no matching rows, a page
// layout that lacks an expected element) is logged and reflected in the
// returned *model.Result rather than returned as an error:
//
//   - list modes always return a table, header-only when nothing matched
//   - detail mode returns no table when no field could be extracted
//   - a missing layout element returns no table in every mode
package lookup
