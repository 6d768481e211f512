// Package csvio reads the competition roster CSV and writes the two output
// tables. Reading validates the required header columns up front; writing is
// all-or-nothing: both tables land via temp-file rename, or neither does.
package csvio
