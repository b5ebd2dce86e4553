/*
Package logger provides logging functionality to a unitconv app by defining the required behavior in [Logger]
and providing an implementation of it with [AppLogger].

# Overview

The Logger interface outputs messages at certain levels of importance,
using the levels of [log/slog].
An [AppLogger] emits records through the [*log/slog.Logger] it is constructed with,
so that logger's handler decides the minimum level and the output format.

Each record carries the call site of the code calling the [AppLogger] method
and, when provided, a [*LogContext] under the "log_context" key.
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging.

# Handlers

The functions [ColorizeLevel], [DeleteLevelAttr], [DeleteMessageAttr] and [TruncSourceAttr]
are ReplaceAttr functions for configuring a [log/slog.Handler].

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.

# SentryLogger

[SentryLogger] wraps a [Logger], sending warnings and errors carrying an error to Sentry.
*/
package logger
