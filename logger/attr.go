package logger

import (
	"log/slog"

	"github.com/fatih/color"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgWhite),
	slog.LevelInfo:  color.New(color.FgBlue),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

// ColorizeLevel colors the level of a record for terminal output.
//
// ColorizeLevel is a ReplaceAttr function, cf. [log/slog.HandlerOptions].
func ColorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	c, ok := levelColors[lvl]
	if !ok {
		c = color.New(color.FgMagenta)
	}

	return slog.String(a.Key, c.Sprint(lvl.String()))
}

// DeleteLevelAttr drops the level of a record.
//
// DeleteLevelAttr is a ReplaceAttr function, cf. [log/slog.HandlerOptions].
func DeleteLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		return slog.Attr{}
	}

	return a
}

// DeleteMessageAttr drops the message of a record.
//
// DeleteMessageAttr is a ReplaceAttr function, cf. [log/slog.HandlerOptions].
func DeleteMessageAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.MessageKey {
		return slog.Attr{}
	}

	return a
}

// TruncSourceAttr shortens the source file of a record
// to the file and the directory it is in.
//
// TruncSourceAttr is a ReplaceAttr function, cf. [log/slog.HandlerOptions].
func TruncSourceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.SourceKey {
		return a
	}

	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}

	short := *src
	short.File = immediateFilepath(src.File)
	short.Function = ""

	return slog.Any(a.Key, &short)
}
