// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"seehuhn.de/go/geom/rect"
)

// Configuration keys.
const (
	cfgScene     = "scene"
	cfgOutput    = "output"
	cfgFormat    = "format"
	cfgWidth     = "width"
	cfgHeight    = "height"
	cfgZoom      = "zoom"
	cfgFill      = "fill"
	cfgLogLevel  = "log.level"
	cfgViewXMin  = "viewport.xmin"
	cfgViewYMin  = "viewport.ymin"
	cfgViewXMax  = "viewport.xmax"
	cfgViewYMax  = "viewport.ymax"
	cfgEnvPrefix = "RASTER"
)

var formats = []string{"png", "jpg", "bmp", "tiff", "pdf", "text"}

// loadConfig reads the optional config file and the RASTER_* environment
// variables.  Environment variables override the file; nested keys use an
// underscore, for example RASTER_VIEWPORT_XMAX.
func loadConfig(fileName string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgScene, "demo")
	v.SetDefault(cfgOutput, "")
	v.SetDefault(cfgFormat, "text")
	v.SetDefault(cfgWidth, 300)
	v.SetDefault(cfgHeight, 220)
	v.SetDefault(cfgZoom, 2)
	v.SetDefault(cfgFill, true)
	v.SetDefault(cfgLogLevel, "warn")
	v.SetDefault(cfgViewXMin, 0.0)
	v.SetDefault(cfgViewYMin, 0.0)
	v.SetDefault(cfgViewXMax, 0.0)
	v.SetDefault(cfgViewYMax, 0.0)

	v.SetEnvPrefix(cfgEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fileName != "" {
		v.SetConfigFile(fileName)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// checkConfig validates the settings which are not checked elsewhere.
func checkConfig(v *viper.Viper) error {
	format := strings.ToLower(v.GetString(cfgFormat))
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q (want one of %s)",
			format, strings.Join(formats, ", "))
	}
	if format != "text" && v.GetString(cfgOutput) == "" {
		return fmt.Errorf("format %s needs an output file", format)
	}
	if v.GetInt(cfgWidth) <= 0 || v.GetInt(cfgHeight) <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d",
			v.GetInt(cfgWidth), v.GetInt(cfgHeight))
	}
	if v.GetInt(cfgZoom) < 1 {
		return fmt.Errorf("invalid zoom %d", v.GetInt(cfgZoom))
	}
	return nil
}

// viewport returns the configured clipping rectangle.  The second result
// is false if no viewport is configured.
func viewport(v *viper.Viper) (rect.Rect, bool) {
	r := rect.Rect{
		LLx: v.GetFloat64(cfgViewXMin),
		LLy: v.GetFloat64(cfgViewYMin),
		URx: v.GetFloat64(cfgViewXMax),
		URy: v.GetFloat64(cfgViewYMax),
	}
	return r, r.URx > r.LLx && r.URy > r.LLy
}

// logLevel parses the configured log level.
func logLevel(v *viper.Viper) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(v.GetString(cfgLogLevel)))
	return level, err
}
