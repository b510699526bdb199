// Package streamparse reconstructs structured records from a live token
// stream. The remote generator answers with free text containing two
// well-known markers ("# Shortened" and "# Keywords"); fragments arrive
// with boundaries that do not align with that structure, so the parser
// buffers a residual tail per source unit and promotes text to record
// fields only once a paragraph-delimited block is complete.
//
// Feed reports whether a field actually changed value, so callers can
// re-render exactly when new structure becomes available. The final
// record set is invariant under how the stream was chopped into
// fragments. Malformed or unterminated markup is never an error: it
// simply stays in the residual buffer as "not yet parseable".
package streamparse
