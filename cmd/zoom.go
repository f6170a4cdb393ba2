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

	"github.com/spf13/cobra"

	"github.com/bgschiller/backsplash/params"
	"github.com/bgschiller/backsplash/tile"
)

var optZoomBBox string
var optZoomWidth float64
var optZoomMetersPerPx float64

// zoomCmd represents the zoom command
var zoomCmd = &cobra.Command{
	Use:   "zoom",
	Short: "Pick a zoom level for a bounding box",
	Long: `Picks the zoom at which the box's top edge fits the viewport width.
With --meters-per-px, matches that target ground resolution at the box's
top-right corner instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		bound, err := parseBBox(optZoomBBox)
		if err != nil {
			log.Fatalln(err)
		}

		z := tile.ChooseZoom(bound, optZoomWidth)
		if optZoomMetersPerPx > 0 {
			z = tile.ZoomForResolution(bound.Max, optZoomMetersPerPx)
		}
		fmt.Println(int(z))
	},
}

func init() {
	rootCmd.AddCommand(zoomCmd)

	zoomCmd.Flags().StringVar(&optZoomBBox, "bbox", "", "bounding box, minLon,minLat,maxLon,maxLat")
	zoomCmd.Flags().Float64Var(&optZoomWidth, "width", params.DefaultViewportWidth, "viewport width in pixels")
	zoomCmd.Flags().Float64Var(&optZoomMetersPerPx, "meters-per-px", 0, "target ground resolution")
	zoomCmd.MarkFlagRequired("bbox")
}
