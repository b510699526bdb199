// Package sse implements dryer's streaming output boundary. Each
// OutputEvent is written as one line of UTF-8 text containing a JSON
// object with a "content" (or "error") field, followed by a blank line,
// server-sent-events style. The stream is always terminated by an
// explicit end-of-stream sentinel so consumers never hang waiting for
// completion, even on the error and empty-output paths.
package sse
