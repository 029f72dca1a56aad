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

// Command rasterdemo draws a scene with the raster algorithms and writes
// the result as an image, a PDF page or as text on the terminal.
//
// Settings are read from an optional config file (-config) and from
// RASTER_* environment variables; command line flags take precedence.
// Use -list to see the available scenes.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/display"
)

func main() {
	configFile := flag.String("config", "", "config file (YAML, JSON or TOML)")
	sceneName := flag.String("scene", "", `scene to draw, "demo" or category/name`)
	output := flag.String("o", "", "output file")
	format := flag.String("format", "", "output format: "+strings.Join(formats, ", "))
	list := flag.Bool("list", false, "list the available scenes and exit")
	flag.Parse()

	if *list {
		listScenes(os.Stdout)
		return
	}

	v, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *sceneName != "" {
		v.Set(cfgScene, *sceneName)
	}
	if *output != "" {
		v.Set(cfgOutput, *output)
		if *format == "" && v.GetString(cfgFormat) == "text" {
			// guess the format from the file name
			if ext := formatFromExt(*output); ext != "" {
				v.Set(cfgFormat, ext)
			}
		}
	}
	if *format != "" {
		v.Set(cfgFormat, *format)
	}
	if err := checkConfig(v); err != nil {
		log.Fatal(err)
	}

	level, err := logLevel(v)
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	raster.SetLogger(logger)

	sc, err := loadScene(v.GetString(cfgScene), v.GetInt(cfgWidth), v.GetInt(cfgHeight), v.GetBool(cfgFill))
	if err != nil {
		log.Fatal(err)
	}

	if r, ok := viewport(v); ok {
		visible, err := raster.NewViewport(r).Clip(sc.shapes)
		if err != nil {
			logger.Warn("some shapes could not be clipped", "error", err)
		}
		sc.shapes = visible
	}

	if err := write(sc, v, logger); err != nil {
		log.Fatal(err)
	}
}

// write sends the scene to the configured output.
func write(sc *scene, v *viper.Viper, logger *slog.Logger) error {
	zoom := v.GetInt(cfgZoom)
	out := v.GetString(cfgOutput)

	switch strings.ToLower(v.GetString(cfgFormat)) {
	case "text":
		if out == "" {
			return writeText(sc, os.Stdout, logger)
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := writeText(sc, f, logger); err != nil {
			f.Close()
			return err
		}
		return f.Close()

	case "pdf":
		page := display.NewPDF(sc.width, sc.height, float64(zoom))
		raster.Display(page, sc.shapes...)
		for _, s := range sc.shapes {
			if o, ok := s.(interface{ Path() path.Path }); ok {
				page.StrokeOutline(o.Path(), raster.White, 0.1)
			}
		}
		return page.WriteFile(out)

	default:
		img := display.NewImage(sc.width, sc.height, color.Black)
		raster.Display(img, sc.shapes...)
		if n := img.Dropped(); n > 0 {
			logger.Info("pixels outside the canvas", "count", n)
		}
		return img.Save(withExt(out, v.GetString(cfgFormat)), zoom)
	}
}

// writeText prints the scene as characters.  On a terminal, the output is
// cropped to the window size.
func writeText(sc *scene, f *os.File, logger *slog.Logger) error {
	width, height := sc.width, sc.height
	if fd := int(f.Fd()); term.IsTerminal(fd) {
		cols, rows, err := term.GetSize(fd)
		if err == nil && (width > cols || height > rows-1) {
			logger.Warn("scene cropped to the terminal",
				"scene", fmt.Sprintf("%dx%d", width, height),
				"terminal", fmt.Sprintf("%dx%d", cols, rows))
			width, height = min(width, cols), min(height, max(rows-1, 1))
		}
	}

	txt := display.NewText(width, height)
	raster.Display(txt, sc.shapes...)
	_, err := txt.WriteTo(f)
	return err
}

// withExt adds the extension for format if fileName has none.
func withExt(fileName, format string) string {
	if filepath.Ext(fileName) != "" {
		return fileName
	}
	return fileName + "." + strings.ToLower(format)
}

// formatFromExt returns the output format matching the extension of
// fileName, or "" if there is no extension.
func formatFromExt(fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	switch ext {
	case "txt":
		return "text"
	case "jpeg":
		return "jpg"
	case "tif":
		return "tiff"
	}
	return ext
}
