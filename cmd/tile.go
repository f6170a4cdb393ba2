/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/bgschiller/backsplash/params"
	"github.com/bgschiller/backsplash/s2"
	"github.com/bgschiller/backsplash/tile"
)

var optTileZoom int

// tileCmd represents the tile command
var tileCmd = &cobra.Command{
	Use:   "tile [lat] [lon]",
	Short: "Convert a point to its tile index",
	Long: `Prints the z/x/y tile containing a point, and the S2 cell token
covering the tile's center.

With no args, reads line-delimited GeoJSON Point features from stdin and
converts each one:

  cat points.geojson | backsplash tile --zoom 14
`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		zoom := tile.ClampZoom(optTileZoom)

		if len(args) >= 2 {
			pt, err := parseLatLon(args[0], args[1])
			if err != nil {
				log.Fatalln(err)
			}
			printTile(pt, zoom)
			return
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			pt, ok := pointFromGeoJSON(scanner.Bytes())
			if !ok {
				continue
			}
			printTile(pt, zoom)
		}
		if err := scanner.Err(); err != nil {
			log.Fatalln(err)
		}
	},
}

// pointFromGeoJSON plucks the coordinates out of one GeoJSON feature line.
func pointFromGeoJSON(line []byte) (orb.Point, bool) {
	coords := gjson.GetBytes(line, "geometry.coordinates").Array()
	if len(coords) < 2 {
		slog.Warn("Skipping feature without point coordinates", "line", string(line))
		return orb.Point{}, false
	}
	return orb.Point{coords[0].Float(), coords[1].Float()}, true
}

func printTile(pt orb.Point, zoom tile.ZoomLevel) {
	t := tile.At(pt, zoom)
	fmt.Printf("%d/%d/%d cell=%s\n", t.Zoom, t.X, t.Y, s2.CellIDForTile(t).ToToken())
}

func init() {
	rootCmd.AddCommand(tileCmd)

	tileCmd.Flags().IntVar(&optTileZoom, "zoom", int(params.DefaultZoom), "zoom level, 1..20")
}
