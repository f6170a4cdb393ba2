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
	"fmt"
	"log"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bgschiller/backsplash/params"
	"github.com/bgschiller/backsplash/tile"
)

var optCoverBBox string
var optCoverZoom int

// coverCmd represents the cover command
var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "List the tiles covering a bounding box",
	Long: `Enumerates every tile at the given zoom whose footprint intersects
the bounding box, one z/x/y per line, then logs a coverage summary.

  backsplash cover --bbox -105.1514,39.8762,-105.1342,39.8905 --zoom 15
`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		bound, err := parseBBox(optCoverBBox)
		if err != nil {
			log.Fatalln(err)
		}

		tiles := tile.Covering(bound, tile.ClampZoom(optCoverZoom))
		for _, t := range tiles {
			fmt.Printf("%d/%d/%d\n", t.Zoom, t.X, t.Y)
		}

		report := tile.Coverage(tiles)
		slog.Info("Covered bound",
			"tiles", humanize.Comma(int64(report.Tiles)),
			"zoom", report.Zoom,
			"m/px.min", report.ResolutionMin,
			"m/px.mean", report.ResolutionMean,
			"m/px.max", report.ResolutionMax)
	},
}

func init() {
	rootCmd.AddCommand(coverCmd)

	coverCmd.Flags().StringVar(&optCoverBBox, "bbox", "", "bounding box, minLon,minLat,maxLon,maxLat")
	coverCmd.Flags().IntVar(&optCoverZoom, "zoom", int(params.DefaultZoom), "zoom level, 1..20")
	coverCmd.MarkFlagRequired("bbox")
}
