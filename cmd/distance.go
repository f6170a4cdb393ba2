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

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bgschiller/backsplash/tile"
)

// distanceCmd represents the distance command
var distanceCmd = &cobra.Command{
	Use:   "distance [lat1] [lon1] [lat2] [lon2]",
	Short: "Great-circle distance between two points",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		a, err := parseLatLon(args[0], args[1])
		if err != nil {
			log.Fatalln(err)
		}
		b, err := parseLatLon(args[2], args[3])
		if err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("%s m\n", humanize.CommafWithDigits(tile.HaversineMeters(a, b), 1))
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)
}
