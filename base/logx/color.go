// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default; color is still only emitted when
// the output supports it.
var UseColor = true

// output wraps a [termenv.Output] for coloring level tags.
type output struct {
	*termenv.Output
}

func newOutput(w io.Writer) output {
	return output{termenv.NewOutput(w)}
}

// level returns the string form of the given level,
// colored according to its severity.
func (o output) level(lv slog.Level) string {
	s := lv.String()
	if !UseColor || o.Profile == termenv.Ascii {
		return s
	}
	var clr termenv.Color
	switch {
	case lv >= slog.LevelError:
		clr = o.Color("#FF5555")
	case lv >= slog.LevelWarn:
		clr = o.Color("#FFB86C")
	case lv >= slog.LevelInfo:
		clr = o.Color("#50FA7B")
	default:
		clr = o.Color("#8BE9FD")
	}
	return o.String(s).Foreground(clr).Bold().String()
}
