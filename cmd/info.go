/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/neumesh/mesh"
	"github.com/notargets/neumesh/readers"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print statistics of a mesh file",
	Long:  `Print point, element and face counts of a mesh file, along with the boundary conditions it carries`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			gridFile string
			mf       *readers.MeshFile
			st       mesh.Statistics
		)
		if gridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		if len(gridFile) == 0 {
			return fmt.Errorf("must supply a mesh file (-F, --gridFile)")
		}
		if mf, err = readers.ReadMeshFile(gridFile, viper.GetBool("verbose")); err != nil {
			return
		}
		if st, err = mf.Mesh.Statistics(); err != nil {
			return
		}
		out := cmd.OutOrStdout()
		if len(mf.Description) != 0 {
			fmt.Fprintf(out, "%s\n", mf.Description)
		}
		st.Print(out)
		for _, marker := range mesh.BoundaryMarkers(mf.BCs, mf.Periodicity) {
			if bc, ok := mf.BCs[marker]; ok {
				fmt.Fprintf(out, "  BC[%d] = %s, code %d\n", marker, bc.Name, bc.Code)
			} else {
				fmt.Fprintf(out, "  BC[%d] = periodic %v\n", marker, mf.Periodicity.Periods)
			}
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().StringP("gridFile", "F", "", "mesh file to read (.neu, .yaml, .yml, .json, .jsonc)")
}
